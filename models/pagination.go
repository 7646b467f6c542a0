package models

import (
	"fmt"
	"math"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	// MaxPage keeps (page-1)*limit within an int32 OFFSET.
	MaxPage = math.MaxInt32 / MaxPageLimit
)

type Page struct {
	Page  int
	Limit int
}

func (p Page) WithDefaults() Page {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	return p
}

func (p Page) Validate() error {
	errs := FieldValidationError{}
	if p.Page < 1 || p.Page > MaxPage {
		errs.Add("page", fmt.Sprintf("must be between 1 and %d", MaxPage))
	}
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		errs.Add("limit", "must be between 1 and 100")
	}
	return errs.OrNil()
}

func (p Page) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)
