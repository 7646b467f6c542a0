package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/dto"
)

func postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(testServer.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func TestApiEndToEnd(t *testing.T) {
	requireDatabase(t)

	resp, err := http.Get(testServer.URL + "/liveness")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, "/firs", map[string]any{
		"crime":       "Chain snatching",
		"ipcSections": []string{"356", "379"},
		"summary":     "Gold chain snatched by two men on a motorcycle",
		"priority":    4,
		"location":    "MG Road",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Fir dto.APIFir `json:"fir"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	firId := created.Fir.FirId
	assert.Equal(t, "REGISTERED", created.Fir.Status)

	resp = postJSON(t, "/firs/"+firId+"/status", map[string]any{
		"status":      "CLOSED",
		"description": "Accused arrested, chain recovered",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var closed struct {
		Fir dto.APIFir `json:"fir"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&closed))
	assert.Equal(t, "CLOSED", closed.Fir.Status)
	assert.NotNil(t, closed.Fir.ClosedAt)

	resp, err = http.Get(testServer.URL + "/search/firs?status=CLOSED&query=chain")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var search dto.FirSearchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&search))
	assert.GreaterOrEqual(t, search.Total, 1)

	resp, err = http.Get(testServer.URL + "/firs/" + firId + "/document")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp, err = http.Get(testServer.URL + "/firs/FIR-19990101-000")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = postJSON(t, "/extractions", map[string]any{"text": "someone stole my phone"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
