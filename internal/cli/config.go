package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the static client configuration. None of it is behavioral: the
// base URL, provider client id and payment key all come from the deployment,
// not from user interaction.
type Config struct {
	BaseURL string

	// StoreDriver selects the credential store backend: sqlite or bbolt.
	StoreDriver string
	StorePath   string

	// ProviderClientID identifies this app to the social identity provider.
	ProviderClientID string

	// PaymentPublishableKey is the payment provider's publishable key. The
	// secret counterpart lives server-side only.
	PaymentPublishableKey string

	LogLevel  string
	LogFormat string

	// RateLimit paces outbound requests per second; RateBurst is the bucket
	// size. Zero disables pacing.
	RateLimit float64
	RateBurst int
}

// LoadConfig reads configuration from the environment (STUDYHUB_* variables)
// with an optional .env file for local development.
func LoadConfig() (Config, error) {
	// Load .env if it exists (ignore if it does not).
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("STUDYHUB")
	v.AutomaticEnv()

	v.SetDefault("base_url", "https://studyhub-green.vercel.app")
	v.SetDefault("store_driver", "sqlite")
	v.SetDefault("store_path", defaultStorePath())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("rate_limit", 0.0)
	v.SetDefault("rate_burst", 1)

	cfg := Config{
		BaseURL:               v.GetString("base_url"),
		StoreDriver:           v.GetString("store_driver"),
		StorePath:             v.GetString("store_path"),
		ProviderClientID:      v.GetString("provider_client_id"),
		PaymentPublishableKey: v.GetString("payment_publishable_key"),
		LogLevel:              v.GetString("log_level"),
		LogFormat:             v.GetString("log_format"),
		RateLimit:             v.GetFloat64("rate_limit"),
		RateBurst:             v.GetInt("rate_burst"),
	}

	switch cfg.StoreDriver {
	case "sqlite", "bbolt":
	default:
		return Config{}, fmt.Errorf("unknown store driver %q (want sqlite or bbolt)", cfg.StoreDriver)
	}

	return cfg, nil
}

// defaultStorePath places the credential store under the user's home
// directory, falling back to the working directory when home is unknown.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "studyhub-credentials.db"
	}
	return filepath.Join(home, ".studyhub", "credentials.db")
}
