package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/repositories/dbmodels"
)

// SearchFirs returns one page of FIRs matching every supplied predicate.
// params must have gone through WithDefaults and Validate: the sort field is interpolated.
func (repo *DbRepository) SearchFirs(ctx context.Context, exec Executor, params models.FirSearchParams) ([]models.Fir, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectFirColumn...).
		From(dbmodels.TABLE_FIRS).
		OrderBy(
			fmt.Sprintf("%s %s", params.SortBy, params.SortDirection),
			fmt.Sprintf("id %s", params.SortDirection),
		).
		Limit(uint64(params.Page.Limit)).
		Offset(params.Page.Offset())

	return SqlToListOfModels(ctx, exec, applyFirSearchFilters(query, params), dbmodels.AdaptFir)
}

// CountSearchFirs counts every FIR matching the predicates of params, ignoring pagination.
func (repo *DbRepository) CountSearchFirs(ctx context.Context, exec Executor, params models.FirSearchParams) (int, error) {
	query := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_FIRS)

	return ScanScalar[int](ctx, exec, applyFirSearchFilters(query, params))
}

func applyFirSearchFilters(query squirrel.SelectBuilder, params models.FirSearchParams) squirrel.SelectBuilder {
	if params.Query != "" {
		pattern := containsPattern(params.Query)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"crime": pattern},
			squirrel.ILike{"summary": pattern},
			squirrel.ILike{"location": pattern},
			squirrel.ILike{"fir_id": pattern},
		})
	}
	if len(params.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": params.Statuses})
	}
	if len(params.Priorities) > 0 {
		query = query.Where(squirrel.Eq{"priority": params.Priorities})
	}
	if params.CreatedFrom != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *params.CreatedFrom})
	}
	if params.CreatedTo != nil {
		query = query.Where(squirrel.LtOrEq{"created_at": *params.CreatedTo})
	}
	if params.Location != "" {
		query = query.Where(squirrel.ILike{"location": containsPattern(params.Location)})
	}
	if params.IpcSection != "" {
		query = query.Where(squirrel.Expr("? = ANY(ipc_sections)", params.IpcSection))
	}
	if len(params.Tags) > 0 {
		query = query.Where(squirrel.Expr("tags && ?", params.Tags))
	}
	if params.ReporterId != "" {
		query = query.Where(squirrel.Eq{"reporter_id": params.ReporterId})
	}
	if params.OfficerId != "" {
		query = query.Where(squirrel.Eq{"officer_id": params.OfficerId})
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
