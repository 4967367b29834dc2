package contract

import (
	"context"

	"github.com/diegoclair/weekend-bot/pkg/models"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/mock_service.go -package=mocks . WeekendService

type WeekendService interface {
	Describe(locale string) *models.WeekendReport
	CheckDay(locale, day string) (bool, error)
	ResolveLocale(ctx context.Context, slackUserID string) string
}
