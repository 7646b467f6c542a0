package repositories

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Adityakk9031/FirAgent/models"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// executes the sql query with the given executor and returns a list of models using the provided adapter
func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Model, error) {
		dbModel, err := pgx.RowToStructByName[DBModel](row)
		if err != nil {
			var zeroModel Model
			return zeroModel, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		return adapter(dbModel)
	})
}

// executes the sql query with the given executor and returns a model using the provided adapter
// If no result is returned by the query, returns nil
func SqlToOptionalModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	modelsList, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}

	switch len(modelsList) {
	case 0:
		return nil, nil
	case 1:
		return &modelsList[0], nil
	default:
		var model Model
		return nil, errors.Newf("expected 1 or 0 %v, got %d rows in the result",
			reflect.TypeOf(model), len(modelsList))
	}
}

// executes the sql query with the given executor and returns a model using the provided adapter
// if no result is returned by the query, returns a NotFoundError
func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	var zeroModel Model
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}

// ForEachRow runs fn on every row of the query result, stopping at the first error.
func ForEachRow(ctx context.Context, exec Executor, query squirrel.Sqlizer, fn func(row pgx.CollectableRow) error) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "error executing sql query")
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}

	return errors.Wrap(rows.Err(), "error iterating over rows")
}

// ScanScalar runs a single row query and scans its first column, typically a COUNT.
func ScanScalar[T any](ctx context.Context, exec Executor, query squirrel.Sqlizer) (T, error) {
	var value T
	sql, args, err := query.ToSql()
	if err != nil {
		return value, errors.Wrap(err, "can't build sql query")
	}
	if err := exec.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		return value, errors.Wrap(err, "error scanning scalar")
	}
	return value, nil
}

func ExecBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, errors.Wrap(err, "can't build sql query")
	}
	return exec.Exec(ctx, sql, args...)
}
