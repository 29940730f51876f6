package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "JWT_SECRET", "JWT_EXPIRY", "AUTH_HEADER_NAME", "AUTH_TOKEN_PREFIX", "REDIS_URL")

	cfg := Load()

	if cfg.Auth.HeaderName != "Authorization" {
		t.Errorf("expected header Authorization, got %q", cfg.Auth.HeaderName)
	}
	if cfg.Auth.TokenPrefix != "Bearer " {
		t.Errorf("expected prefix %q, got %q", "Bearer ", cfg.Auth.TokenPrefix)
	}
	if cfg.JWT.Expiry != 4*time.Hour {
		t.Errorf("expected expiry 4h, got %s", cfg.JWT.Expiry)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected redis audit sink disabled by default, got %q", cfg.Redis.URL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("AUTH_TOKEN_PREFIX", "Token ")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()

	if cfg.JWT.Secret != "s3cr3t" {
		t.Errorf("expected secret override, got %q", cfg.JWT.Secret)
	}
	if cfg.JWT.Expiry != 90*time.Minute {
		t.Errorf("expected expiry 90m, got %s", cfg.JWT.Expiry)
	}
	if cfg.Auth.TokenPrefix != "Token " {
		t.Errorf("expected prefix override, got %q", cfg.Auth.TokenPrefix)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("expected invalid bcrypt cost to fall back to 12, got %d", cfg.Auth.BcryptCost)
	}
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, value) })
		}
		_ = os.Unsetenv(key)
	}
}
