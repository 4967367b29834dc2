package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/weekend-bot/internal/domain"
	"github.com/diegoclair/weekend-bot/pkg/models"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_newWeekend(t *testing.T) {
	m, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	assert.Equal(t, m.mockSlackClient, svc.slackClient)
	assert.Equal(t, "en-GB", svc.defaultLocale)
	assert.NotNil(t, svc.log)

	svc = newWeekend(nil, "")
	assert.Equal(t, domain.DefaultLocale, svc.defaultLocale)
}

func Test_weekendService_Describe(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		want   *models.WeekendReport
	}{
		{
			name:   "Should describe Friday+Saturday locale",
			locale: "ar-EG",
			want:   &models.WeekendReport{Locale: "ar-EG", FriSat: true, Days: []string{"Friday", "Saturday"}},
		},
		{
			name:   "Should describe Saturday+Sunday locale",
			locale: "en-US",
			want:   &models.WeekendReport{Locale: "en-US", FriSat: false, Days: []string{"Saturday", "Sunday"}},
		},
		{
			name:   "Should keep the locale as given",
			locale: "he-il",
			want:   &models.WeekendReport{Locale: "he-il", FriSat: true, Days: []string{"Friday", "Saturday"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			assert.Equal(t, tt.want, svc.Describe(tt.locale))
		})
	}
}

func Test_weekendService_CheckDay(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		day     string
		want    bool
		wantErr bool
	}{
		{name: "Friday is weekend in Iran", locale: "fa-IR", day: "friday", want: true},
		{name: "Friday is a workday in the US", locale: "en-US", day: "fri", want: false},
		{name: "Sunday by ISO number is weekend in the US", locale: "en-US", day: "7", want: true},
		{name: "Sunday is a workday in Pakistan", locale: "ur-PK", day: "Sunday", want: false},
		{name: "Should return error for invalid day", locale: "en-US", day: "funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			got, err := svc.CheckDay(tt.locale, tt.day)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid day")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_weekendService_ResolveLocale(t *testing.T) {
	type args struct {
		slackUserID string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		want      string
	}{
		{
			name: "Should return the Slack profile locale",
			args: args{slackUserID: "U123456789"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSlackClient.EXPECT().
					GetUserInfoContext(gomock.Any(), args.slackUserID).
					Return(&slack.User{ID: args.slackUserID, Locale: "ar-EG"}, nil).Times(1)
			},
			want: "ar-EG",
		},
		{
			name: "Should fall back to default when Slack fails",
			args: args{slackUserID: "U123456789"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSlackClient.EXPECT().
					GetUserInfoContext(gomock.Any(), args.slackUserID).
					Return(nil, errors.New("user_not_found")).Times(1)
			},
			want: "en-GB",
		},
		{
			name: "Should fall back to default when user has no locale",
			args: args{slackUserID: "U123456789"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockSlackClient.EXPECT().
					GetUserInfoContext(gomock.Any(), args.slackUserID).
					Return(&slack.User{ID: args.slackUserID}, nil).Times(1)
			},
			want: "en-GB",
		},
		{
			name: "Should not call Slack without a user ID",
			args: args{slackUserID: ""},
			want: "en-GB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			assert.Equal(t, tt.want, svc.ResolveLocale(context.Background(), tt.args.slackUserID))
		})
	}
}
