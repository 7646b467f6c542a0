package utils

import (
	"reflect"
)

// ColumnList returns the `db` tags of a struct, in field order, optionally prefixed by a table alias.
func ColumnList[T any](prefix ...string) []string {
	var zero T
	t := reflect.TypeOf(zero)

	var tablePrefix string
	if len(prefix) > 0 && prefix[0] != "" {
		tablePrefix = prefix[0] + "."
	}

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tablePrefix+tag)
	}
	return columns
}

func Ptr[T any](v T) *T {
	return &v
}
