// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file,
// if present), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/bytes"
)

/*
	Env vars are read using the prefix BLOG_. Keys are lower-cased, the
	prefix is removed, and "." separates nesting levels:

	  BLOG_SERVER.PORT       -> server.port       -> Config.Server.Port
	  BLOG_DATABASE.SSL_MODE -> database.ssl_mode -> Config.Database.SSLMode

	Underscores are NOT converted to dots, so nested keys must use a dot.
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "BLOG_"

const (
	DefaultMaxBodySize = "1M"
	DefaultRateLimit   = 20
)

// Config is the root configuration object for the application.
//
// Redis, Integration and Observability are optional blocks.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env
// ("local" enables SQL query logging).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// MaxBodySize bounds request bodies, in Echo BodyLimit syntax ("1M", "512K").
	MaxBodySize string `koanf:"max_body_size"`

	// RateLimit is the sustained number of requests per second allowed
	// per client IP.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are whole seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port"; empty disables Redis.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// IntegrationConfig holds third-party credentials.
//
// Post-added notifications are sent only when ResendAPIKey and
// NotifyEmail are both set (and Redis is configured for the job queue).
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	NotifyEmail  string `koanf:"notify_email" validate:"omitempty,email"`
	FromEmail    string `koanf:"from_email" validate:"omitempty,email"`
}

// NotificationsEnabled reports whether post-added emails should be sent.
func (i IntegrationConfig) NotificationsEnabled() bool {
	return i.ResendAPIKey != "" && i.NotifyEmail != ""
}

// FromAddress is the sender identity used for outgoing email.
func (i IntegrationConfig) FromAddress() string {
	from := i.FromEmail
	if from == "" {
		from = "onboarding@resend.dev"
	}
	return fmt.Sprintf("%s <%s>", "Blog", from)
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix BLOG_
//   - Unmarshals into Config
//   - Starts from defaults for the optional settings (body limit, rate
//     limit, observability)
//   - Validates required config blocks/fields and the observability block
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Defaults are set before unmarshalling; koanf only overwrites the
	// keys present in the environment.
	mainConfig := &Config{
		Server: ServerConfig{
			MaxBodySize: DefaultMaxBodySize,
			RateLimit:   DefaultRateLimit,
		},
		Observability: DefaultObservabilityConfig(),
	}

	// "" unmarshals everything from the root.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	mainConfig.Observability.ServiceName = "blog-posts"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := bytes.Parse(mainConfig.Server.MaxBodySize); err != nil {
		return nil, fmt.Errorf("invalid server max_body_size %q: %w", mainConfig.Server.MaxBodySize, err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
