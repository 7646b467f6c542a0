package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Validate_bounds(t *testing.T) {
	assert.NoError(t, Page{Page: MaxPage, Limit: MaxPageLimit}.Validate())

	err := Page{Page: math.MaxInt64 / 50, Limit: MaxPageLimit}.Validate()
	assert.ErrorIs(t, err, BadParameterError)
	fieldErrors, ok := err.(FieldValidationError)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "page")
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, uint64(0), Page{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, uint64(40), Page{Page: 3, Limit: 20}.Offset())

	last := Page{Page: MaxPage, Limit: MaxPageLimit}
	assert.LessOrEqual(t, last.Offset(), uint64(math.MaxInt32))
}
