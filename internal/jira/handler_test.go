package jira

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	r := chi.NewRouter()
	NewHandler(NewService(nil, "KAN", testLogger())).RegisterRoutes(r)
	return r
}

func TestHandlerSearch(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/jira?action=search&query=memory+leak", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var issues []domain.JiraIssue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "KAN-5", issues[0].Key)
}

func TestHandlerSearchRequiresQuery(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/jira?action=search", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Query parameter is required")
}

func TestHandlerRequiresAction(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/jira", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerInvalidAction(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/jira?action=explode", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid action")
}

func TestHandlerGetIssue(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/jira?action=issue&issueKey=KAN-4", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var issue domain.JiraIssue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issue))
	assert.Equal(t, "High CPU usage in production environment", issue.Fields.Summary)
}

func TestHandlerGetIssueNotFound(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/jira?action=issue&issueKey=KAN-404", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerCreate(t *testing.T) {
	r := newTestRouter()

	body, _ := json.Marshal(map[string]any{
		"action": "create",
		"data":   map[string]any{"fields": map[string]any{"summary": "New outage"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/jira", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var issue domain.JiraIssue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issue))
	assert.Equal(t, "New outage", issue.Fields.Summary)
}

func TestHandlerUpdateRequiresKeyAndData(t *testing.T) {
	r := newTestRouter()

	body, _ := json.Marshal(map[string]any{
		"action": "update",
		"data":   map[string]any{"issueKey": "KAN-5"},
	})
	req := httptest.NewRequest(http.MethodPost, "/jira", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
