package cmd

import (
	"context"
	"fmt"

	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/utils"
)

func RunMigrations() error {
	pgConfig := readPgConfig()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(pgConfig, logger)
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	return nil
}
