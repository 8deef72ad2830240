package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	unsetEnvWithCleanup(t, "SERVER_PORT")
	unsetEnvWithCleanup(t, "SESSION_COOKIE_NAME")
	unsetEnvWithCleanup(t, "PORTAL_SESSION_TTL_MINUTES")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Fatalf("expected default server port 8080, got %q", cfg.ServerPort)
	}
	if cfg.SessionCookieName != "EINSURANCE_SESSION" {
		t.Fatalf("expected default session cookie name, got %q", cfg.SessionCookieName)
	}
	if cfg.PortalSessionTTLMinutes != 60 {
		t.Fatalf("expected default TTL 60, got %d", cfg.PortalSessionTTLMinutes)
	}
	if cfg.SessionRefreshSchedule != "@every 10m" {
		t.Fatalf("expected default refresh schedule, got %q", cfg.SessionRefreshSchedule)
	}
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "SERVER_PORT", "9090")
	setEnvWithCleanup(t, "POLICY_API_BASE_URL", "http://policies.internal/api/policies")
	setEnvWithCleanup(t, "PORTAL_SESSION_TTL_MINUTES", "15")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "9090" {
		t.Fatalf("expected server port from env, got %q", cfg.ServerPort)
	}
	if cfg.PolicyAPIBaseURL != "http://policies.internal/api/policies" {
		t.Fatalf("expected policy base URL from env, got %q", cfg.PolicyAPIBaseURL)
	}
	if cfg.PortalSessionTTLMinutes != 15 {
		t.Fatalf("expected TTL from env, got %d", cfg.PortalSessionTTLMinutes)
	}
}

func TestLoadConfig_MissingEnvFileIsTolerated(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	if _, err := LoadConfig(t.TempDir()); err != nil {
		t.Fatalf("expected a missing .env file to be tolerated, got %v", err)
	}
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	unsetEnvWithCleanup(t, "GATEWAY_URL")

	dir := t.TempDir()
	if err := os.WriteFile(dir+"/.env", []byte("GATEWAY_URL=http://gateway.internal:8903\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GatewayURL != "http://gateway.internal:8903" {
		t.Fatalf("expected gateway URL from .env, got %q", cfg.GatewayURL)
	}
}

func setEnvWithCleanup(t *testing.T, key string, value string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func unsetEnvWithCleanup(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}
