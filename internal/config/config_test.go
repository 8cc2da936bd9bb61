package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerPort != "8000" {
		t.Errorf("ServerPort = %q; want 8000", cfg.ServerPort)
	}
	if cfg.ProviderTimeout() != 10*time.Second {
		t.Errorf("ProviderTimeout = %v; want 10s", cfg.ProviderTimeout())
	}
	if cfg.GoogleMapsAPIKey != "" {
		t.Errorf("GoogleMapsAPIKey = %q; want empty", cfg.GoogleMapsAPIKey)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	dir := t.TempDir()
	content := "AVIATIONSTACK_API_KEY=from-file\nSERVER_PORT=9000\n"
	if err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AviationStackAPIKey != "from-file" {
		t.Errorf("AviationStackAPIKey = %q; want from-file", cfg.AviationStackAPIKey)
	}
	if cfg.ServerPort != "9100" {
		t.Errorf("ServerPort = %q; want 9100 from env", cfg.ServerPort)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "")
	t.Setenv("FLIGHTAWARE_API_KEY", "")
	os.Unsetenv("FLIGHTAWARE_API_KEY")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FLIGHTAWARE_API_KEY=dotenv-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.FlightAwareAPIKey != "dotenv-key" {
		t.Errorf("FlightAwareAPIKey = %q; want dotenv-key", cfg.FlightAwareAPIKey)
	}
}
