package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the bot
type Config struct {
	// Telegram
	TelegramToken string

	// Mode
	Debug bool

	// OP_NET RPC
	RPCURL     string
	RPCTimeout time.Duration

	// Link targets for inline URL buttons
	WebAppURL    string
	GitHubURL    string
	ExplorerURL  string
	FaucetURL    string
	DocsURL      string
	CommunityURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Telegram
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		// Mode
		Debug: getEnvBool("DEBUG", false),

		// OP_NET RPC
		RPCURL:     getEnv("OPNET_RPC_URL", "https://regtest.opnet.org"),
		RPCTimeout: getEnvDuration("OPNET_RPC_TIMEOUT", 8*time.Second),

		// Links
		WebAppURL:    getEnv("WEBAPP_URL", "https://opbitpredict.github.io/BitPredict/"),
		GitHubURL:    getEnv("GITHUB_URL", "https://github.com/opbitpredict/BitPredict"),
		ExplorerURL:  getEnv("EXPLORER_URL", "https://opscan.org"),
		FaucetURL:    getEnv("FAUCET_URL", "https://faucet.opnet.org"),
		DocsURL:      getEnv("DEV_DOCS_URL", "https://dev.opnet.org"),
		CommunityURL: getEnv("TELEGRAM_COMMUNITY_URL", "https://t.me/opnetbtc"),
	}

	// Validate required fields
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
