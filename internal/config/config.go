// Package config loads storefront settings from a YAML file, an optional
// .env file and SHOPLEDGER_* environment variables, in that order of
// increasing precedence.
package config

import (
	"time"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverRedis    Driver = "redis"
	DriverPostgres Driver = "postgres"
)

type Config struct {
	API     API     `yaml:"api"`
	Storage Storage `yaml:"storage"`
	HTTP    HTTP    `yaml:"http"`
	Log     Log     `yaml:"log"`
}

type API struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"`
	Burst     int           `yaml:"burst"`
	Currency  string        `yaml:"currency"`
}

type Storage struct {
	Driver      Driver        `yaml:"driver"`
	Dir         string        `yaml:"dir"`
	RedisAddr   string        `yaml:"redis_addr"`
	RedisPrefix string        `yaml:"redis_prefix"`
	PostgresDSN string        `yaml:"postgres_dsn"`
	Timeout     time.Duration `yaml:"timeout"`
}

type HTTP struct {
	Listen string `yaml:"listen"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		API: API{
			BaseURL:   "http://localhost:8080",
			Timeout:   10 * time.Second,
			RateLimit: 20,
			Burst:     40,
			Currency:  "USD",
		},
		Storage: Storage{
			Driver:      DriverFile,
			Dir:         ".shopledger",
			RedisPrefix: "shopledger:",
			Timeout:     500 * time.Millisecond,
		},
		HTTP: HTTP{
			Listen: ":8090",
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}
