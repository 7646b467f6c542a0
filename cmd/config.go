package cmd

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/Adityakk9031/FirAgent/infra"
	"github.com/Adityakk9031/FirAgent/utils"
)

// CompiledConfig is filled at build time through -ldflags.
type CompiledConfig struct {
	Version string
}

type ServerConfig struct {
	loggingFormat        string
	sentryDsn            string
	documentAuthority    string
	extractionConfigFile string
}

func (config ServerConfig) Validate() error {
	switch config.loggingFormat {
	case "text", "json":
		return nil
	}
	return errors.Newf("LOGGING_FORMAT must be text or json, got %q", config.loggingFormat)
}

func readPgConfig() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "firagent"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func readRedisConfig() infra.RedisConfig {
	return infra.RedisConfig{
		Address:       utils.GetEnv("REDIS_ADDRESS", ""),
		Key:           utils.GetEnv("REDIS_KEY", ""),
		Tls:           utils.GetEnv("REDIS_TLS", false),
		TlsSkipVerify: utils.GetEnv("REDIS_TLS_SKIP_VERIFY", false),
		AnalyticsTtl:  time.Duration(utils.GetEnv("ANALYTICS_CACHE_TTL_SECOND", 60)) * time.Second,
	}
}

func readLlmConfig() infra.LlmConfig {
	return infra.LlmConfig{
		Provider:          utils.GetEnv("LLM_PROVIDER", infra.LlmProviderOpenAI),
		ApiKey:            utils.GetEnv("LLM_API_KEY", ""),
		BaseUrl:           utils.GetEnv("LLM_BASE_URL", ""),
		Model:             utils.GetEnv("LLM_MODEL", ""),
		Temperature:       float32(utils.GetEnv("LLM_TEMPERATURE", 0.1)),
		RequestsPerMinute: utils.GetEnv("LLM_REQUESTS_PER_MINUTE", 0),
	}
}
