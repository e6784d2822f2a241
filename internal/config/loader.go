package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "rentfold.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// The YAML file is optional; a missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "RENTFOLD_PORT")
	setString(&cfg.Server.CORSOrigin, "RENTFOLD_CORS_ORIGIN")
	setString(&cfg.Postgres.DSN, "DATABASE_URL")
	setInt32(&cfg.Postgres.MaxConns, "RENTFOLD_PG_MAX_CONNS")
	setInt32(&cfg.Postgres.MinConns, "RENTFOLD_PG_MIN_CONNS")
	setDuration(&cfg.Postgres.MaxConnLifetime, "RENTFOLD_PG_MAX_CONN_LIFETIME")
	setDuration(&cfg.Postgres.MaxConnIdleTime, "RENTFOLD_PG_MAX_CONN_IDLE_TIME")
	setDuration(&cfg.Postgres.HealthCheck, "RENTFOLD_PG_HEALTH_CHECK")
	setString(&cfg.Auth.TokenSecret, "RENTFOLD_TOKEN_SECRET")
	setDuration(&cfg.Auth.AccessTokenExpiry, "RENTFOLD_TOKEN_EXPIRY")
	setInt(&cfg.Auth.BcryptCost, "RENTFOLD_BCRYPT_COST")
	setString(&cfg.Storage.Bucket, "RENTFOLD_STORAGE_BUCKET")
	setString(&cfg.Storage.Region, "RENTFOLD_STORAGE_REGION")
	setString(&cfg.Storage.KeyPrefix, "RENTFOLD_STORAGE_PREFIX")
	setString(&cfg.Storage.LocalDir, "RENTFOLD_STORAGE_DIR")
	setString(&cfg.Logging.Level, "RENTFOLD_LOG_LEVEL")
	setString(&cfg.Logging.Service, "RENTFOLD_LOG_SERVICE")
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required")
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("postgres dsn is required")
	}
	if cfg.Auth.TokenSecret == "" {
		return errors.New("auth token_secret is required (set RENTFOLD_TOKEN_SECRET)")
	}
	if cfg.Auth.BcryptCost < 10 || cfg.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt_cost %d out of range [10, 31]", cfg.Auth.BcryptCost)
	}
	if cfg.Storage.Bucket == "" && cfg.Storage.LocalDir == "" {
		return errors.New("storage requires a bucket or a local_dir")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt32(dst *int32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(n)
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
