package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url[%s] is not a valid URL", c.API.BaseURL)
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}

	if c.API.RateLimit < 0 || c.API.Burst < 0 {
		return fmt.Errorf("api.rate_limit and api.burst must not be negative")
	}

	if _, err := currency.ParseISO(c.API.Currency); err != nil {
		return fmt.Errorf("api.currency[%s] is not valid: %w", c.API.Currency, err)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage.dir is required for the file driver")
		}
	case DriverRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr is required for the redis driver")
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("storage.driver[%s] is not supported", c.Storage.Driver)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level[%s] is not valid: %w", c.Log.Level, err)
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format[%s] must be console or json", c.Log.Format)
	}

	return nil
}

// Currency returns the parsed API currency. Validate guarantees it parses.
func (c Config) Currency() currency.Unit {
	unit, err := currency.ParseISO(c.API.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}
