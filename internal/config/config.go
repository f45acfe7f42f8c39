// Package config loads the service configuration.
//
// Sources, later ones winning:
//   - built-in defaults (koanf confmap provider)
//   - a `.env` file, if present (godotenv autoload)
//   - process environment variables prefixed with HELLOMVC_
//
// A double underscore separates nesting levels, a single underscore is
// part of the key:
//
//	HELLOMVC_PRIMARY__ENV=production            -> primary.env
//	HELLOMVC_SERVER__READ_TIMEOUT=30            -> server.read_timeout
//	HELLOMVC_OBSERVABILITY__LOGGING__LEVEL=warn -> observability.logging.level
//
// The result is validated with go-playground/validator plus the
// hand-written rules in ObservabilityConfig.Validate.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "HELLOMVC_"

// ServiceName tags logs and New Relic data.
const ServiceName = "hello-mvc"

// Config is the root configuration object.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name ("local", "development",
// "production", ...).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// BodyLimit caps request bodies, in Echo's size notation ("2M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`

	// RateLimit is the sustained requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=0"`
}

func defaults() map[string]interface{} {
	obs := DefaultObservabilityConfig()

	return map[string]interface{}{
		"server.port":                 "8080",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.shutdown_timeout":     10,
		"server.cors_allowed_origins": []string{"*"},
		"server.body_limit":           "2M",
		"server.rate_limit":           0,
		"server.rate_burst":           0,

		"observability.logging.level":                         obs.Logging.Level,
		"observability.logging.format":                        obs.Logging.Format,
		"observability.new_relic.license_key":                 obs.NewRelic.LicenseKey,
		"observability.new_relic.app_log_forwarding_enabled":  obs.NewRelic.AppLogForwardingEnabled,
		"observability.new_relic.distributed_tracing_enabled": obs.NewRelic.DistributedTracingEnabled,
		"observability.new_relic.debug_logging":               obs.NewRelic.DebugLogging,
	}
}

// envKey maps HELLOMVC_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// envValue splits comma separated list values.
func envValue(key, value string) (string, interface{}) {
	k := envKey(key)
	if k == "server.cors_allowed_origins" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return k, parts
	}
	return k, value
}

// LoadConfig builds, validates and returns the configuration.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
