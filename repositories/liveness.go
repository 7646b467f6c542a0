package repositories

import "context"

func (repo *DbRepository) Liveness(ctx context.Context, exec Executor) error {
	var result int
	return exec.QueryRow(ctx, "SELECT 1").Scan(&result)
}
