package repositories

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Adityakk9031/FirAgent/infra"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Migrater struct {
	pgConfig infra.PgConfig
	logger   *slog.Logger
}

func NewMigrater(pgConfig infra.PgConfig, logger *slog.Logger) *Migrater {
	return &Migrater{pgConfig: pgConfig, logger: logger}
}

func (m *Migrater) Run(ctx context.Context) error {
	db, err := sql.Open("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "unable to open database for migrations")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	return RunMigrationsOnDb(ctx, db, m.logger)
}

func RunMigrationsOnDb(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	logger.InfoContext(ctx, "Migrations starting")

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "unable to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Wrap(err, "unable to run migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "unable to read migration version")
	}
	logger.InfoContext(ctx, "Migrations done", slog.Int64("version", version))
	return nil
}
