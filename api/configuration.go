package api

import (
	"time"
)

type Configuration struct {
	Env                 string
	AppName             string
	AppVersion          string
	Port                string
	CorsAllowedOrigins  []string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
	ExtractionTimeout   time.Duration
	MaxBodySize         int64
	EnablePrometheus    bool
}

const (
	defaultRequestTimeout    = 10 * time.Second
	defaultExtractionTimeout = 45 * time.Second
	defaultMaxBodySize       = 1 << 20
)

func (cfg Configuration) withDefaults() Configuration {
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = defaultRequestTimeout
	}
	if cfg.ExtractionTimeout <= 0 {
		cfg.ExtractionTimeout = defaultExtractionTimeout
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = defaultMaxBodySize
	}
	return cfg
}
