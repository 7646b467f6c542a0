package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/models"
)

func TestApplyFirSearchFilters_without_predicates(t *testing.T) {
	params := models.FirSearchParams{}.WithDefaults()

	sql, args, err := applyFirSearchFilters(NewQueryBuilder().Select("COUNT(*)").From("firs"), params).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM firs", sql)
	assert.Empty(t, args)
}

func TestApplyFirSearchFilters_combines_predicates_with_and(t *testing.T) {
	params := models.FirSearchParams{
		Query:      "50%_off",
		Statuses:   []models.FirStatus{models.FirStatusRegistered, models.FirStatusClosed},
		IpcSection: "IPC 379",
		Tags:       []string{"night"},
	}.WithDefaults()

	sql, args, err := applyFirSearchFilters(NewQueryBuilder().Select("COUNT(*)").From("firs"), params).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM firs WHERE "+
		"(crime ILIKE $1 OR summary ILIKE $2 OR location ILIKE $3 OR fir_id ILIKE $4) "+
		"AND status IN ($5,$6) AND $7 = ANY(ipc_sections) AND tags && $8", sql)
	assert.Equal(t, []any{
		`%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`,
		models.FirStatusRegistered, models.FirStatusClosed,
		"IPC 379",
		[]string{"night"},
	}, args)
}

func TestApplyFirSearchFilters_ranges_and_people(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	params := models.FirSearchParams{
		Priorities:  []int{4, 5},
		CreatedFrom: &from,
		CreatedTo:   &to,
		Location:    "pune",
		ReporterId:  "reporter",
		OfficerId:   "officer",
	}.WithDefaults()

	sql, args, err := applyFirSearchFilters(NewQueryBuilder().Select("id").From("firs"), params).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM firs WHERE priority IN ($1,$2) AND created_at >= $3 "+
		"AND created_at <= $4 AND location ILIKE $5 AND reporter_id = $6 AND officer_id = $7", sql)
	assert.Equal(t, []any{4, 5, from, to, "%pune%", "reporter", "officer"}, args)
}
