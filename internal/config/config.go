// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them into
// structured Go types and validates that required values are present so
// they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (server, observability).
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
)

/*
	Env vars are read using the PERSON_ prefix. Keys are lowercased, the
	prefix is removed and a double underscore marks nesting:

	  PERSON_STORE__TABLE_NAME -> store.table_name -> Config.Store.TableName

	The deployment stack hands the table name to the function as a bare
	TABLE_NAME variable, so that one is accepted as well.
*/

const (
	// EnvPrefix is the prefix every service variable carries.
	EnvPrefix = "PERSON_"

	// TableNameEnv is the variable the deployment stack sets for the function.
	TableNameEnv = "TABLE_NAME"
)

// Store drivers.
const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverRedis    = "redis"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Store         StoreConfig          `koanf:"store" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the local HTTP server. Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// StoreConfig selects and addresses the key-value store persons are written to.
//
// TableName is the DynamoDB table, or the key namespace when Driver is redis.
// Endpoint overrides the DynamoDB endpoint (LocalStack, dynamodb-local).
type StoreConfig struct {
	Driver       string `koanf:"driver" validate:"required,oneof=dynamodb redis"`
	TableName    string `koanf:"table_name" validate:"required"`
	Region       string `koanf:"region"`
	Endpoint     string `koanf:"endpoint"`
	RedisAddress string `koanf:"redis_address" validate:"required_if=Driver redis"`
}

// DefaultConfig returns the configuration every loaded value is layered on.
// The table name has no default: it must come from the environment.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Store: StoreConfig{
			Driver: StoreDriverDynamoDB,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// over the defaults, validates it and returns the resulting config.
//
// A missing table name is an error here; callers treat it as fatal.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Bare TABLE_NAME first so PERSON_STORE__TABLE_NAME wins when both are set.
	err := k.Load(env.Provider(TableNameEnv, ".", func(s string) string {
		if s != TableNameEnv {
			return ""
		}
		return "store.table_name"
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", TableNameEnv, err)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
