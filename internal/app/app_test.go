package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds the app with default config: no upstream is
// configured, so every surface serves fixture data.
func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(config.Default())
	require.NoError(t, err)
	return a
}

func doRequest(t *testing.T, a *App, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := doRequest(t, a, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
}

func TestVersionEndpoint(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "version")
	assert.Contains(t, body, "commit")
	assert.Contains(t, body, "build_date")
}

func TestIncidentsRouted(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, http.MethodGet, "/api/incidents/query?q=critical", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "INC-001")
}

func TestJiraServesFixturesWhenUnconfigured(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, http.MethodGet, "/api/jira?action=search&query=show+all+issues", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "KAN-4")
}

func TestOpenShiftServesFixturesWhenUnconfigured(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, http.MethodGet, "/api/openshift/query?q=pod+status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pod Status in default")
}

func TestMCPRouted(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, http.MethodGet, "/api/mcp/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "System Health")
}

func TestReportsRouted(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{
		"/api/recommendations",
		"/api/health-checks",
		"/api/rca-reports",
		"/api/dependencies",
	} {
		rec := doRequest(t, a, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAssistantRouted(t *testing.T) {
	a := newTestApp(t)

	body, _ := json.Marshal(map[string]string{"message": "show me jira tickets"})
	rec := doRequest(t, a, http.MethodPost, "/api/assistant/messages", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "I found these JIRA issues:")
}

func TestUnknownRouteReturns404(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(t, a, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
