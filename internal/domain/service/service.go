package service

import (
	"github.com/diegoclair/weekend-bot/internal/domain/contract"
)

type Services struct {
	Weekend contract.WeekendService
}

func New(slackClient contract.SlackClient, defaultLocale string) *Services {
	return &Services{
		Weekend: newWeekend(slackClient, defaultLocale),
	}
}
