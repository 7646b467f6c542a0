package infra

import (
	"fmt"
	"time"
)

type PgConfig struct {
	ConnectionString   string
	Database           string
	Hostname           string
	Password           string
	Port               string
	User               string
	MaxPoolConnections int
	SslMode            string
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}

	if config.SslMode == "" {
		config.SslMode = "prefer"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s database=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, config.SslMode)
}

type RedisConfig struct {
	Address       string
	Key           string
	Tls           bool
	TlsSkipVerify bool
	AnalyticsTtl  time.Duration
}

func (config RedisConfig) Enabled() bool {
	return config.Address != ""
}

type TelemetryConfiguration struct {
	Enabled         bool
	ApplicationName string
	SamplingRate    float64
}

type SentryConfiguration struct {
	Dsn         string
	Environment string
}
