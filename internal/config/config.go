package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL    string
	HTTPPort       string
	MigrateOnStart bool
	LogLevel       slog.Level

	RedisAddr       string
	ProductCacheTTL time.Duration

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string

	LogoPath string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	RenderTimeout   time.Duration
	SendTimeout     time.Duration

	CORSAllowedOrigins []string
}

func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		MailFrom:       getEnv("MAIL_FROM", "facturas@indukitchen.co"),
		MailFromName:   getEnv("MAIL_FROM_NAME", "Indukitchen"),
		LogoPath:       getEnv("LOGO_PATH", ""),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	var err error

	if cfg.MigrateOnStart, err = getEnvBool("MIGRATE_ON_START", true); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	durations := []struct {
		key  string
		def  time.Duration
		dest *time.Duration
	}{
		{"PRODUCT_CACHE_TTL", 15 * time.Minute, &cfg.ProductCacheTTL},
		{"REQUEST_TIMEOUT", 30 * time.Second, &cfg.RequestTimeout},
		{"SHUTDOWN_TIMEOUT", 15 * time.Second, &cfg.ShutdownTimeout},
		{"RENDER_TIMEOUT", 10 * time.Second, &cfg.RenderTimeout},
		{"SEND_TIMEOUT", 10 * time.Second, &cfg.SendTimeout},
	}
	for _, d := range durations {
		if *d.dest, err = getEnvDuration(d.key, d.def); err != nil {
			return Config{}, err
		}
	}

	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
