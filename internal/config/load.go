package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SHOPLEDGER_"

// Load builds the configuration. An empty path skips the YAML file; a
// missing .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("godotenv.Load: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("applyEnv: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.API.BaseURL, "API_BASE_URL")
	setString(&cfg.API.Currency, "API_CURRENCY")
	setString((*string)(&cfg.Storage.Driver), "STORAGE_DRIVER")
	setString(&cfg.Storage.Dir, "STORAGE_DIR")
	setString(&cfg.Storage.RedisAddr, "STORAGE_REDIS_ADDR")
	setString(&cfg.Storage.RedisPrefix, "STORAGE_REDIS_PREFIX")
	setString(&cfg.Storage.PostgresDSN, "STORAGE_POSTGRES_DSN")
	setString(&cfg.HTTP.Listen, "HTTP_LISTEN")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")

	if err := setDuration(&cfg.API.Timeout, "API_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Storage.Timeout, "STORAGE_TIMEOUT"); err != nil {
		return err
	}

	if v, ok := lookup("API_RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sAPI_RATE_LIMIT[%s] is not a number: %w", envPrefix, v, err)
		}
		cfg.API.RateLimit = f
	}

	if v, ok := lookup("API_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sAPI_BURST[%s] is not an integer: %w", envPrefix, v, err)
		}
		cfg.API.Burst = n
	}

	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func setString(dst *string, name string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name string) error {
	v, ok := lookup(name)
	if !ok {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s%s[%s] is not a duration: %w", envPrefix, name, v, err)
	}

	*dst = d
	return nil
}
