package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/Adityakk9031/FirAgent/api"
	"github.com/Adityakk9031/FirAgent/infra"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases"
	"github.com/Adityakk9031/FirAgent/usecases/extraction"
	"github.com/Adityakk9031/FirAgent/usecases/firid"
	"github.com/Adityakk9031/FirAgent/utils"
)

func RunServer(compiled CompiledConfig) error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "firagent",
		AppVersion:          compiled.Version,
		Port:                utils.GetRequiredEnv[string]("PORT"),
		CorsAllowedOrigins:  strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", ""), ","),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
		ExtractionTimeout:   time.Duration(utils.GetEnv("EXTRACTION_TIMEOUT_SECOND", 45)) * time.Second,
		MaxBodySize:         int64(utils.GetEnv("MAX_BODY_SIZE_BYTES", 1<<20)),
		EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", true),
	}
	pgConfig := readPgConfig()
	redisConfig := readRedisConfig()
	tracingConfig := infra.TelemetryConfiguration{
		Enabled:         utils.GetEnv("ENABLE_TRACING", false),
		ApplicationName: apiConfig.AppName,
		SamplingRate:    utils.GetEnv("TRACING_SAMPLING_RATE", infra.DEFAULT_SAMPLING_RATE),
	}
	serverConfig := ServerConfig{
		loggingFormat:        utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:            utils.GetEnv("SENTRY_DSN", ""),
		documentAuthority:    utils.GetEnv("DOCUMENT_AUTHORITY", ""),
		extractionConfigFile: utils.GetEnv("EXTRACTION_CONFIG_FILE", ""),
	}
	if err := serverConfig.Validate(); err != nil {
		return err
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(infra.SentryConfiguration{
		Dsn:         serverConfig.sentryDsn,
		Environment: apiConfig.Env,
	}, compiled.Version)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(ctx, tracingConfig, compiled.Version)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	repoOptions := []repositories.Option{}
	if redisConfig.Enabled() {
		redisClient, err := repositories.NewRedisClient(ctx, redisConfig)
		if err != nil {
			utils.LogAndReportSentryError(ctx, err)
			return err
		}
		defer redisClient.Close()
		repoOptions = append(repoOptions, repositories.WithAnalyticsCache(
			repositories.NewRedisAnalyticsCache(redisClient, redisConfig.AnalyticsTtl)))
	}
	repos := repositories.NewRepositories(pool, repoOptions...)

	ucOptions := []usecases.Option{
		usecases.WithApiVersion(compiled.Version),
		usecases.WithDocumentAuthority(serverConfig.documentAuthority),
	}
	pipeline, err := newExtractionPipeline(ctx, serverConfig.extractionConfigFile)
	switch {
	case err != nil:
		utils.LogAndReportSentryError(ctx, err)
		return err
	case pipeline == nil:
		logger.WarnContext(ctx, "no language model api key configured, extraction endpoints will answer 503")
	default:
		ucOptions = append(ucOptions, usecases.WithExtractionPipeline(pipeline))
	}
	uc := usecases.NewUsecases(repos, ucOptions...)

	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while shutting down the server"))
		return err
	}
	if err := telemetryRessources.Shutdown(shutdownCtx); err != nil {
		logger.WarnContext(ctx, "could not flush traces", "error", err.Error())
	}

	return nil
}

// newExtractionPipeline returns nil without error when no provider key is set.
func newExtractionPipeline(ctx context.Context, configFile string) (*extraction.Pipeline, error) {
	llmConfig, err := readLlmConfig().WithConfigFile(configFile)
	if err != nil {
		return nil, err
	}
	if llmConfig.ApiKey == "" {
		return nil, nil
	}

	completer, err := infra.NewCompleter(ctx, llmConfig)
	if err != nil {
		return nil, err
	}

	return extraction.NewPipeline(completer, firid.NewGenerator(),
		extraction.WithRateLimit(llmConfig.RequestsPerMinute),
		extraction.WithGuidance(llmConfig.Guidance),
	)
}
