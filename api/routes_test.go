package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityakk9031/FirAgent/dto"
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases"
)

// Every request below is rejected before any store access, so the usecases run without a database.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerValidators()
	addRoutes(r, Configuration{MaxBodySize: 4096}.withDefaults(), usecases.NewUsecases(repositories.Repositories{}))
	return r
}

func serve(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, dto.APIErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.APIErrorResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestCreateFir_missing_fields(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodPost, "/firs", `{"priority": 9, "ipcSections": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ValidationError, resp.ErrorCode)
	assert.Equal(t, "is required", resp.Details["crime"])
	assert.Equal(t, "is required", resp.Details["summary"])
	assert.Contains(t, resp.Details, "priority")
}

func TestCreateFir_malformed_json(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodPost, "/firs", `{"crime": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ValidationError, resp.ErrorCode)
}

func TestSearchFirs_limit_too_large(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodGet, "/search/firs?limit=500&status=REGISTERED", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "must be at most 100", resp.Details["limit"])
}

func TestSearchFirs_bad_priority(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodGet, "/search/firs?priority=2&priority=8", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ValidationError, resp.ErrorCode)
}

func TestMonthlyStats_requires_year(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodGet, "/analytics/monthly", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "is required", resp.Details["year"])
}

func TestTimeRange_requires_bounds(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodGet, "/analytics/time-range?start=2024-01-01T00:00:00Z", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "is required", resp.Details["end"])
}

func TestExtraction_without_model(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodPost, "/extractions", `{"text": "someone broke into my shop last night"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ExtractionFailed, resp.ErrorCode)
}

func TestExtraction_requires_text(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodPost, "/extractions", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "is required", resp.Details["text"])
}

func TestCreateUser_bad_email(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodPost, "/users", `{"username": "asha", "email": "not-an-address"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "is not a valid address", resp.Details["email"])
}

func TestCreateNotification_bad_type(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodPost, "/notifications",
		`{"userId": "0b6c2b7e-56a5-4d1e-9a5b-7d6d3f1f3c2a", "title": "t", "message": "m", "type": "SPAM"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "must be one of STATUS_UPDATE, ASSIGNMENT, INFO", resp.Details["type"])
}

func TestUpdateStatus_requires_status(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodPost, "/firs/FIR-20240101-001/status", `{"description": "moving on"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "is required", resp.Details["status"])
}

func TestListUserFirs_unknown_user_format(t *testing.T) {
	r := newTestRouter()

	w, resp := serve(t, r, http.MethodGet, "/users/not-a-uuid/firs", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.UnknownUser, resp.ErrorCode)
}
