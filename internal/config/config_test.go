package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/nikolayk812/indukitchen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"DATABASE_URL", "HTTP_PORT", "MIGRATE_ON_START", "LOG_LEVEL", "REDIS_ADDR", "PRODUCT_CACHE_TTL",
	"SENDGRID_API_KEY", "MAIL_FROM", "MAIL_FROM_NAME", "LOGO_PATH", "REQUEST_TIMEOUT",
	"SHUTDOWN_TIMEOUT", "RENDER_TIMEOUT", "SEND_TIMEOUT", "CORS_ALLOWED_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/indukitchen")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		DatabaseURL:        "postgres://localhost/indukitchen",
		HTTPPort:           "8080",
		MigrateOnStart:     true,
		LogLevel:           slog.LevelInfo,
		ProductCacheTTL:    15 * time.Minute,
		MailFrom:           "facturas@indukitchen.co",
		MailFromName:       "Indukitchen",
		RequestTimeout:     30 * time.Second,
		ShutdownTimeout:    15 * time.Second,
		RenderTimeout:      10 * time.Second,
		SendTimeout:        10 * time.Second,
		CORSAllowedOrigins: []string{"*"},
	}, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db/indukitchen")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SEND_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3*time.Second, cfg.SendTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing database url",
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "bad duration",
			env:     map[string]string{"DATABASE_URL": "postgres://x", "RENDER_TIMEOUT": "soon"},
			wantErr: `RENDER_TIMEOUT: time: invalid duration "soon"`,
		},
		{
			name:    "negative duration",
			env:     map[string]string{"DATABASE_URL": "postgres://x", "SEND_TIMEOUT": "-1s"},
			wantErr: "SEND_TIMEOUT: must be positive",
		},
		{
			name:    "bad bool",
			env:     map[string]string{"DATABASE_URL": "postgres://x", "MIGRATE_ON_START": "maybe"},
			wantErr: `MIGRATE_ON_START: strconv.ParseBool: parsing "maybe": invalid syntax`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
