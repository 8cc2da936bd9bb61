// Package config loads the service configuration once at startup.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting the service reads from the environment.
// Provider credentials may be empty; the providers degrade on their own.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
	FrontendDist string `mapstructure:"FRONTEND_DIST"`

	FlightAwareAPIKey   string `mapstructure:"FLIGHTAWARE_API_KEY"`
	AviationStackAPIKey string `mapstructure:"AVIATIONSTACK_API_KEY"`
	GoogleMapsAPIKey    string `mapstructure:"GOOGLE_MAPS_API_KEY"`

	FlightAwareBaseURL   string `mapstructure:"FLIGHTAWARE_BASE_URL"`
	AviationStackBaseURL string `mapstructure:"AVIATIONSTACK_BASE_URL"`
	GoogleMapsBaseURL    string `mapstructure:"GOOGLE_MAPS_BASE_URL"`

	ProviderTimeoutSeconds int `mapstructure:"PROVIDER_TIMEOUT_SECONDS"`
}

var defaults = map[string]any{
	"SERVER_PORT":              "8000",
	"CLIENT_ORIGIN":            "*",
	"FRONTEND_DIST":            "../frontend/dist",
	"FLIGHTAWARE_API_KEY":      "",
	"AVIATIONSTACK_API_KEY":    "",
	"GOOGLE_MAPS_API_KEY":      "",
	"FLIGHTAWARE_BASE_URL":     "https://aeroapi.flightaware.com/aeroapi",
	"AVIATIONSTACK_BASE_URL":   "http://api.aviationstack.com/v1",
	"GOOGLE_MAPS_BASE_URL":     "https://maps.googleapis.com/maps/api",
	"PROVIDER_TIMEOUT_SECONDS": 10,
}

// LoadConfig reads app.env from path (optional) and lets environment
// variables override it. Outside of Railway a .env file in path is loaded
// into the process environment first.
func LoadConfig(path string) (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		// A missing .env is the normal case in production.
		_ = godotenv.Load(filepath.Join(path, ".env"))
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeoutSeconds <= 0 {
		cfg.ProviderTimeoutSeconds = 10
	}
	return &cfg, nil
}

// ProviderTimeout is the deadline applied to each outbound provider call.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}
