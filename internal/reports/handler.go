package reports

import (
	"net/http"

	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the reports module.
type Handler struct{}

// NewHandler creates a new reports handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/recommendations", h.Recommendations)
	r.Get("/health-checks", h.HealthChecks)
	r.Get("/rca-reports", h.RCAReports)
	r.Get("/dependencies", h.Dependencies)
}

// Recommendations serves the recommendation cards.
func (h *Handler) Recommendations(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, Recommendations())
}

// HealthChecks serves the cluster health-check report.
func (h *Handler) HealthChecks(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, HealthChecks())
}

// RCAReports serves the root-cause-analysis reports.
func (h *Handler) RCAReports(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, RCAReports())
}

// Dependencies serves the service dependency map.
func (h *Handler) Dependencies(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, Dependencies())
}
