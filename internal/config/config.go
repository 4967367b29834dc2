package config

import (
	"os"

	"github.com/diegoclair/weekend-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Port               string
	DefaultLocale      string
	LogLevel           string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Port:               getEnv("PORT", "3000"),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", domain.DefaultLocale),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
