package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"redis": map[string]any{
			"cacheTTL": "60s",
		},
		"admin": map[string]any{
			"passwordHash": "",
		},
		"email": map[string]any{
			"sendgridApiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_CACHETTL", want: "redis.cacheTTL"},
		{envKey: "ADMIN_PASSWORDHASH", want: "admin.passwordHash"},
		{envKey: "EMAIL_SENDGRIDAPIKEY", want: "email.sendgridApiKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AdminTokenTTL)
	assert.Equal(t, 12, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, 100, cfg.Catalog.MaxPageSize)
	assert.Equal(t, "booksy:", cfg.Redis.Prefix)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	assert.NotNil(t, cfg.Database)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
}

func TestConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{BcryptCost: 10, AccessTokenTTL: time.Hour},
		Catalog: &CatalogConfig{DefaultPageSize: 20, MaxPageSize: 50},
	}
	cfg.applyDefaults()

	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 20, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, 50, cfg.Catalog.MaxPageSize)
}
