package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/weekend-bot/internal/domain"
	"github.com/diegoclair/weekend-bot/internal/domain/contract"
	"github.com/diegoclair/weekend-bot/pkg/models"
	"github.com/diegoclair/weekend-bot/pkg/weekend"
	"github.com/sirupsen/logrus"
)

type weekendService struct {
	slackClient   contract.SlackClient
	defaultLocale string
	log           *logrus.Entry
}

func newWeekend(slackClient contract.SlackClient, defaultLocale string) *weekendService {
	if defaultLocale == "" {
		defaultLocale = domain.DefaultLocale
	}

	return &weekendService{
		slackClient:   slackClient,
		defaultLocale: defaultLocale,
		log:           logrus.StandardLogger().WithField("type", "service/weekend"),
	}
}

func (s *weekendService) Describe(locale string) *models.WeekendReport {
	set := weekend.WeekendDays(locale)
	days := set.Days()

	return &models.WeekendReport{
		Locale: locale,
		FriSat: weekend.UsesFriSatWeekend(locale),
		Days:   []string{domain.WeekdayName(days[0]), domain.WeekdayName(days[1])},
	}
}

func (s *weekendService) CheckDay(locale, day string) (bool, error) {
	weekday, err := domain.ParseWeekday(day)
	if err != nil {
		return false, err
	}

	return weekend.IsWeekendDay(locale, weekday), nil
}

// ResolveLocale looks up the Slack profile locale of a user. Any failure
// resolves to the default locale.
func (s *weekendService) ResolveLocale(ctx context.Context, slackUserID string) string {
	log := s.log.WithField("method", "ResolveLocale").WithField("slack_user_id", slackUserID)

	if slackUserID == "" || s.slackClient == nil {
		return s.defaultLocale
	}

	user, err := s.slackClient.GetUserInfoContext(ctx, slackUserID)
	if err != nil {
		log.WithError(fmt.Errorf("failed to get user info from Slack: %w", err)).Warn("falling back to default locale")
		return s.defaultLocale
	}

	if user == nil || strings.TrimSpace(user.Locale) == "" {
		log.Debug("user has no locale, falling back to default locale")
		return s.defaultLocale
	}

	return user.Locale
}
