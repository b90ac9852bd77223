package reports

import (
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
	NewHandler().RegisterRoutes(r)
	return r
}

func get(t *testing.T, path string, out any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestRecommendationsEndpoint(t *testing.T) {
	var recs []domain.Recommendation
	get(t, "/recommendations", &recs)

	require.Len(t, recs, 5)
	assert.Equal(t, domain.RecommendationSecurity, recs[1].Type)
	assert.Equal(t, domain.SeverityHigh, recs[1].Severity)
}

func TestHealthChecksEndpoint(t *testing.T) {
	var items []domain.HealthCheckItem
	get(t, "/health-checks", &items)

	require.Len(t, items, 6)
	assert.Equal(t, "Order Management Service", items[2].Category)
	assert.Equal(t, domain.HealthStatusCritical, items[2].Status)
	assert.Equal(t, 2, items[2].Details.ReadyPods)
}

func TestRCAReportsEndpoint(t *testing.T) {
	var reports []domain.RCAReport
	get(t, "/rca-reports", &reports)

	require.Len(t, reports, 3)
	assert.Equal(t, "DEVOPS-123", reports[0].IssueID)
	assert.Len(t, reports[0].PreventiveMeasures, 4)
	assert.Contains(t, reports[2].RootCause, "RBAC")
}

func TestDependenciesEndpoint(t *testing.T) {
	var deps []domain.ServiceDependency
	get(t, "/dependencies", &deps)

	require.Len(t, deps, 3)
	assert.Equal(t, domain.DependencyDegraded, deps[1].Status)
	assert.Equal(t, 150, deps[1].Latency)
}
