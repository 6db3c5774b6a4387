package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	for key, value := range map[string]string{
		"BLOG_PRIMARY.ENV":                 "development",
		"BLOG_SERVER.PORT":                 "8080",
		"BLOG_SERVER.READ_TIMEOUT":         "30",
		"BLOG_SERVER.WRITE_TIMEOUT":        "30",
		"BLOG_SERVER.IDLE_TIMEOUT":         "60",
		"BLOG_SERVER.CORS_ALLOWED_ORIGINS": "http://localhost:3000",
		"BLOG_DATABASE.HOST":               "localhost",
		"BLOG_DATABASE.PORT":               "5432",
		"BLOG_DATABASE.USER":               "blog",
		"BLOG_DATABASE.PASSWORD":           "p@ss:word",
		"BLOG_DATABASE.NAME":               "blog",
		"BLOG_DATABASE.SSL_MODE":           "disable",
		"BLOG_DATABASE.MAX_OPEN_CONNS":     "10",
		"BLOG_DATABASE.MAX_IDLE_CONNS":     "2",
		"BLOG_DATABASE.CONN_MAX_LIFETIME":  "300",
		"BLOG_DATABASE.CONN_MAX_IDLE_TIME": "60",
	} {
		t.Setenv(key, value)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "p@ss:word", cfg.Database.Password)

	assert.Equal(t, DefaultMaxBodySize, cfg.Server.MaxBodySize)
	assert.Equal(t, float64(DefaultRateLimit), cfg.Server.RateLimit)

	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Integration.NotificationsEnabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "blog-posts", cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.False(t, cfg.Observability.NewRelic.Enabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BLOG_SERVER.MAX_BODY_SIZE", "512K")
	t.Setenv("BLOG_SERVER.RATE_LIMIT", "2.5")
	t.Setenv("BLOG_REDIS.ADDRESS", "localhost:6379")
	t.Setenv("BLOG_INTEGRATION.RESEND_API_KEY", "re_test")
	t.Setenv("BLOG_INTEGRATION.NOTIFY_EMAIL", "editor@example.com")
	t.Setenv("BLOG_OBSERVABILITY.LOGGING.LEVEL", "debug")
	t.Setenv("BLOG_OBSERVABILITY.LOGGING.SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "512K", cfg.Server.MaxBodySize)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Integration.NotificationsEnabled())
	assert.Equal(t, "Blog <onboarding@resend.dev>", cfg.Integration.FromAddress())

	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	// Unset observability keys keep their defaults.
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BLOG_DATABASE.HOST", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "config validation failed")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"body size", "BLOG_SERVER.MAX_BODY_SIZE", "lots", "invalid server max_body_size"},
		{"log level", "BLOG_OBSERVABILITY.LOGGING.LEVEL", "loud", "invalid logging level"},
		{"notify email", "BLOG_INTEGRATION.NOTIFY_EMAIL", "not-an-email", "config validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestHealthChecksConfig_Runs(t *testing.T) {
	checks := DefaultObservabilityConfig().HealthChecks
	assert.True(t, checks.Runs("database"))
	assert.False(t, checks.Runs("kafka"))

	checks.Enabled = false
	assert.False(t, checks.Runs("database"))
}
