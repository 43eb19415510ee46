package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	FMP_API_KEY=xxxx
//	FMP_BASE_URL=https://financialmodelingprep.com/stable
//	FINNHUB_API_KEY=yyyy
//	FINNHUB_BASE_URL=https://finnhub.io/api/v1
//	PROVIDER_TIMEOUT=10s
//	RATE_LIMIT_PER_MINUTE=60
type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // TCP port the HTTP server listens on (e.g., "8080")
	RateLimitPerMinute int    // inbound requests allowed per client IP per minute
}

// ProvidersConfig holds upstream quote provider credentials and endpoints.
// A provider with an empty key is left out of the fallback chain.
type ProvidersConfig struct {
	FMPAPIKey      string
	FMPBaseURL     string
	FinnhubAPIKey  string
	FinnhubBaseURL string
	Timeout        time.Duration // budget of a single upstream call
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit: validateConfig() terminates the app when no provider key is
// configured or a value is unusable.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("FMP_API_KEY", "")
	viper.SetDefault("FMP_BASE_URL", "https://financialmodelingprep.com/stable")
	viper.SetDefault("FINNHUB_API_KEY", "")
	viper.SetDefault("FINNHUB_BASE_URL", "https://finnhub.io/api/v1")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Providers: ProvidersConfig{
			FMPAPIKey:      viper.GetString("FMP_API_KEY"),
			FMPBaseURL:     viper.GetString("FMP_BASE_URL"),
			FinnhubAPIKey:  viper.GetString("FINNHUB_API_KEY"),
			FinnhubBaseURL: viper.GetString("FINNHUB_BASE_URL"),
			Timeout:        viper.GetDuration("PROVIDER_TIMEOUT"),
		},
	}

	validateConfig()
}

// missingFields lists the configuration problems of c.
func missingFields(c Config) []string {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if c.Providers.FMPAPIKey == "" && c.Providers.FinnhubAPIKey == "" {
		missing = append(missing, "FMP_API_KEY or FINNHUB_API_KEY")
	}
	if c.Providers.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT")
	}
	return missing
}

// validateConfig terminates the application with log.Fatalf when
// AppConfig is incomplete.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
