package dto

import (
	"time"

	"github.com/Adityakk9031/FirAgent/models"
	"github.com/Adityakk9031/FirAgent/pure_utils"
)

// SearchFirsQuery is bound from a flat query string, list filters are repeated keys (status=A&status=B).
type SearchFirsQuery struct {
	Query         string    `form:"query"`
	Statuses      []string  `form:"status"`
	Priorities    []int     `form:"priority" binding:"dive,min=1,max=5"`
	CreatedFrom   time.Time `form:"createdFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	CreatedTo     time.Time `form:"createdTo" time_format:"2006-01-02T15:04:05Z07:00"`
	Location      string    `form:"location"`
	IpcSection    string    `form:"ipcSection"`
	Tags          []string  `form:"tag"`
	ReporterId    string    `form:"reporterId" binding:"omitempty,uuid"`
	OfficerId     string    `form:"officerId" binding:"omitempty,uuid"`
	Page          int       `form:"page" binding:"omitempty,min=1"`
	Limit         int       `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy        string    `form:"sortBy"`
	SortDirection string    `form:"sortDirection"`
}

func AdaptFirSearchParams(query SearchFirsQuery) models.FirSearchParams {
	params := models.FirSearchParams{
		Query:         query.Query,
		Statuses:      pure_utils.Map(query.Statuses, func(s string) models.FirStatus { return models.FirStatus(s) }),
		Priorities:    query.Priorities,
		Location:      query.Location,
		IpcSection:    query.IpcSection,
		Tags:          query.Tags,
		ReporterId:    query.ReporterId,
		OfficerId:     query.OfficerId,
		Page:          models.Page{Page: query.Page, Limit: query.Limit},
		SortBy:        models.FirSortField(query.SortBy),
		SortDirection: models.SortingOrder(query.SortDirection),
	}
	if !query.CreatedFrom.IsZero() {
		params.CreatedFrom = &query.CreatedFrom
	}
	if !query.CreatedTo.IsZero() {
		params.CreatedTo = &query.CreatedTo
	}
	return params
}

type FirSearchResult struct {
	Items []APIFir `json:"items"`
	Total int      `json:"total"`
}

func AdaptFirSearchResult(result models.FirSearchResult) FirSearchResult {
	return FirSearchResult{
		Items: AdaptFirListDto(result.Items),
		Total: result.Total,
	}
}
