// Package config loads the client configuration: where the HRMS API
// lives, the identity token to present, and optional Slack delivery for
// headless runs. A YAML file is the base; environment variables (loaded
// through .env when present) override it.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type SlackConfig struct {
	Token          string `yaml:"token"`
	InfoChannelID  string `yaml:"infoChannel"`
	ErrorChannelID string `yaml:"errorChannel"`
}

type Config struct {
	BaseURL string      `yaml:"baseUrl"`
	Token   string      `yaml:"token"`
	Secret  string      `yaml:"secret"` // base64 HS256 secret, token minting only
	Slack   SlackConfig `yaml:"slack"`
}

// Load reads path (when non-empty) and applies env overrides. A missing
// .env file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	}

	cfg.BaseURL = getEnv("PEOPLEHUB_BASE_URL", cfg.BaseURL)
	cfg.Token = getEnv("PEOPLEHUB_TOKEN", cfg.Token)
	cfg.Secret = getEnv("PEOPLEHUB_SECRET", cfg.Secret)
	cfg.Slack.Token = getEnv("SLACK_BOT_TOKEN", cfg.Slack.Token)
	cfg.Slack.InfoChannelID = getEnv("SLACK_INFO_CHANNEL", cfg.Slack.InfoChannelID)
	cfg.Slack.ErrorChannelID = getEnv("SLACK_ERROR_CHANNEL", cfg.Slack.ErrorChannelID)

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required (PEOPLEHUB_BASE_URL or baseUrl)")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
