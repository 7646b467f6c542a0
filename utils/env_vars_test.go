package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FIRAGENT_TEST_STRING", "hello")
	t.Setenv("FIRAGENT_TEST_INT", "42")
	t.Setenv("FIRAGENT_TEST_BOOL", "true")
	t.Setenv("FIRAGENT_TEST_DURATION", "90s")
	t.Setenv("FIRAGENT_TEST_FLOAT", "0.25")

	assert.Equal(t, "hello", GetEnv("FIRAGENT_TEST_STRING", "default"))
	assert.Equal(t, 42, GetEnv("FIRAGENT_TEST_INT", 1))
	assert.True(t, GetEnv("FIRAGENT_TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnv("FIRAGENT_TEST_DURATION", time.Second))
	assert.Equal(t, 0.25, GetEnv("FIRAGENT_TEST_FLOAT", 1.0))
	assert.Equal(t, "default", GetEnv("FIRAGENT_TEST_MISSING", "default"))
}

func TestGetEnv_invalid_value_panics(t *testing.T) {
	t.Setenv("FIRAGENT_TEST_INT", "forty-two")

	assert.Panics(t, func() { GetEnv("FIRAGENT_TEST_INT", 1) })
}
