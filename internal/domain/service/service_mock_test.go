package service

import (
	"testing"

	"github.com/diegoclair/weekend-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *weekendService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	// validate service creation
	svc = newWeekend(m.mockSlackClient, "en-GB")
	require.NotNil(t, svc)

	return
}
