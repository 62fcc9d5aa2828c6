package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultSourceURL is the canonical location of the activity monitoring archive.
const DefaultSourceURL = "https://d396qusza40orc.cloudfront.net/repdata%2Fdata%2Factivity.zip"

// Config holds all settings, populated from STEPREPORT_* environment variables.
type Config struct {
	SourceURL    string        `envconfig:"SOURCE_URL"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	CacheDir     string        `envconfig:"CACHE_DIR"`   // empty disables archive caching
	OutputPath   string        `envconfig:"OUTPUT_PATH"` // empty writes the report to stdout

	Serve           bool          `envconfig:"SERVE" default:"false"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// Kafka export is feature-flagged: configuring brokers enables it.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"step-daily-summaries"`
}

// Load reads configuration from the environment, applying defaults where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("stepreport", &cfg); err != nil {
		return nil, err
	}

	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	if cfg.FetchTimeout <= 0 {
		return nil, errors.New("STEPREPORT_FETCH_TIMEOUT must be positive")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("STEPREPORT_SHUTDOWN_TIMEOUT must be positive")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("STEPREPORT_LOG_LEVEL must be one of debug, info, warn, error")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("STEPREPORT_LOG_FORMAT must be json or text")
	}
	if cfg.KafkaEnabled() && cfg.KafkaTopic == "" {
		return nil, errors.New("STEPREPORT_KAFKA_TOPIC is required when brokers are configured")
	}
	if cfg.Serve && cfg.HTTPAddr == "" {
		return nil, errors.New("STEPREPORT_HTTP_ADDR is required when serve mode is enabled")
	}

	return &cfg, nil
}

// KafkaEnabled reports whether daily summaries should be exported.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
