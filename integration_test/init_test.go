package integration

import (
	"context"
	"flag"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/Adityakk9031/FirAgent/api"
	"github.com/Adityakk9031/FirAgent/infra"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases"
	"github.com/Adityakk9031/FirAgent/utils"
)

const (
	testUser     = "postgres"
	testPassword = "pwd"
	testDbName   = "firagent"
)

var (
	testRepositories repositories.Repositories
	testUsecases     usecases.Usecases
	testServer       *httptest.Server

	// set when the database could not be started, every test skips with it
	skipReason string
)

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		skipReason = "integration tests do not run in -short mode"
		os.Exit(m.Run())
	}

	ctx := context.Background()
	logger := utils.NewLogger("text")
	ctx = utils.StoreLoggerInContext(ctx, logger)

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(testDbName),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		skipReason = "could not start a postgres container: " + err.Error()
		os.Exit(m.Run())
	}

	connectionString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Could not read container connection string: %s", err)
	}

	pgConfig := infra.PgConfig{ConnectionString: connectionString}
	if err := repositories.NewMigrater(pgConfig, logger).Run(ctx); err != nil {
		log.Fatalf("Could not run migrations: %s", err)
	}

	dbPool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(), nil, 5)
	if err != nil {
		log.Fatalf("Could not create connection pool: %s", err)
	}

	testRepositories = repositories.NewRepositories(dbPool)
	testUsecases = usecases.NewUsecases(testRepositories,
		usecases.WithApiVersion("integration"),
		usecases.WithDocumentAuthority("Integration Police Station"),
	)

	apiConfig := api.Configuration{
		Env:                 "development",
		AppName:             "firagent",
		RequestLoggingLevel: "all",
		DefaultTimeout:      10 * time.Second,
	}
	router := api.InitRouterMiddlewares(ctx, apiConfig, infra.NoopTelemetry())
	server := api.NewServer(router, apiConfig, testUsecases, api.WithLocalTest(true))
	testServer = httptest.NewServer(server.Handler)

	code := m.Run()

	testServer.Close()
	dbPool.Close()
	// os.Exit skips deferred calls
	if err := testcontainers.TerminateContainer(container); err != nil {
		log.Printf("Could not terminate container: %s", err)
	}

	os.Exit(code)
}

func requireDatabase(t *testing.T) {
	t.Helper()
	if skipReason != "" {
		t.Skip(skipReason)
	}
}
