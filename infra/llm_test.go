package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLlmConfig_WithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model: gpt-4o
temperature: 0
requests_per_minute: 30
guidance:
  - Prefer IPC sections over BNS sections.
`), 0o600))

	config, err := LlmConfig{Provider: "openai", Model: "gpt-4o-mini", Temperature: 0.7}.WithConfigFile(path)

	require.NoError(t, err)
	assert.Equal(t, "openai", config.Provider)
	assert.Equal(t, "gpt-4o", config.Model)
	assert.Equal(t, float32(0), config.Temperature)
	assert.Equal(t, 30, config.RequestsPerMinute)
	assert.Equal(t, []string{"Prefer IPC sections over BNS sections."}, config.Guidance)
}

func TestLlmConfig_WithConfigFile_empty_path(t *testing.T) {
	config, err := LlmConfig{Model: "m"}.WithConfigFile("")

	require.NoError(t, err)
	assert.Equal(t, "m", config.Model)
}

func TestPgConfig_GetConnectionString(t *testing.T) {
	assert.Equal(t, "postgres://x", PgConfig{ConnectionString: "postgres://x"}.GetConnectionString())
	assert.Equal(t,
		"host=localhost port=5432 user=u password=p database=d sslmode=prefer",
		PgConfig{Hostname: "localhost", Port: "5432", User: "u", Password: "p", Database: "d"}.GetConnectionString())
}
