package cli

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/diegoclair/weekend-bot/internal/config"
	"github.com/diegoclair/weekend-bot/internal/domain/service"
	"github.com/diegoclair/weekend-bot/internal/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the /weekend Slack slash command",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, using environment only")
	}

	cfg := config.Load()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	if cfg.SlackSigningSecret == "" {
		return fmt.Errorf("SLACK_SIGNING_SECRET is required")
	}

	slackClient := slack.New(cfg.SlackBotToken)
	services := service.New(slackClient, cfg.DefaultLocale)
	handler := handlers.New(services.Weekend, cfg.SlackSigningSecret)

	mux := newMux(handler)

	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func newMux(handler *handlers.SlackHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", handlers.HandleHealth)
	return mux
}
