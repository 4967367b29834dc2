package contract

import (
	"context"

	"github.com/slack-go/slack"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/mock_slack.go -package=mocks . SlackClient

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack, locale included
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)
}
