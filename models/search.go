package models

import (
	"strings"
	"time"
)

type FirSortField string

const (
	FirSortCreatedAt FirSortField = "created_at"
	FirSortUpdatedAt FirSortField = "updated_at"
	FirSortPriority  FirSortField = "priority"
	FirSortStatus    FirSortField = "status"
	FirSortCrime     FirSortField = "crime"
	FirSortFirId     FirSortField = "fir_id"
)

var firSortFields = map[FirSortField]struct{}{
	FirSortCreatedAt: {},
	FirSortUpdatedAt: {},
	FirSortPriority:  {},
	FirSortStatus:    {},
	FirSortCrime:     {},
	FirSortFirId:     {},
}

// FirSearchParams is a set of optional predicates. Zero values mean "no filter";
// the slices match when the FIR has any of the values.
type FirSearchParams struct {
	Query       string
	Statuses    []FirStatus
	Priorities  []int
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Location    string
	IpcSection  string
	Tags        []string
	ReporterId  string
	OfficerId   string

	Page          Page
	SortBy        FirSortField
	SortDirection SortingOrder
}

func (params FirSearchParams) WithDefaults() FirSearchParams {
	params.Query = strings.TrimSpace(params.Query)
	params.Location = strings.TrimSpace(params.Location)
	params.IpcSection = strings.TrimSpace(params.IpcSection)
	params.ReporterId = strings.TrimSpace(params.ReporterId)
	params.OfficerId = strings.TrimSpace(params.OfficerId)
	params.Page = params.Page.WithDefaults()

	// camelCase sort keys are accepted as well
	params.SortBy = FirSortField(camelToSnake(string(params.SortBy)))
	if params.SortBy == "" {
		params.SortBy = FirSortCreatedAt
	}
	params.SortDirection = SortingOrder(strings.ToUpper(string(params.SortDirection)))
	if params.SortDirection == "" {
		params.SortDirection = SortingOrderDesc
	}

	statuses := make([]FirStatus, 0, len(params.Statuses))
	for _, s := range params.Statuses {
		if s = FirStatusFrom(string(s)); s != "" {
			statuses = append(statuses, s)
		}
	}
	params.Statuses = statuses
	if len(params.Tags) > 0 {
		params.Tags = NormalizeTags(params.Tags)
	}
	return params
}

func (params FirSearchParams) Validate() error {
	errs := FieldValidationError{}

	if err := params.Page.Validate(); err != nil {
		for k, v := range err.(FieldValidationError) {
			errs.Add(k, v)
		}
	}
	if _, ok := firSortFields[params.SortBy]; !ok {
		errs.Add("sortBy", "unknown sort field")
	}
	if params.SortDirection != SortingOrderAsc && params.SortDirection != SortingOrderDesc {
		errs.Add("sortDirection", "must be ASC or DESC")
	}
	for _, p := range params.Priorities {
		if p < MinFirPriority || p > MaxFirPriority {
			errs.Add("priority", "must be between 1 and 5")
		}
	}
	if params.CreatedFrom != nil && params.CreatedTo != nil && params.CreatedFrom.After(*params.CreatedTo) {
		errs.Add("createdFrom", "must not be after createdTo")
	}
	validateUserRef(errs, "reporterId", &params.ReporterId)
	validateUserRef(errs, "officerId", &params.OfficerId)

	return errs.OrNil()
}

type FirSearchResult struct {
	Items []Fir
	Total int
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
