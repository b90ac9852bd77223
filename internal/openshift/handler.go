package openshift

import (
	"net/http"

	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the cluster module.
type Handler struct {
	service *Service
}

// NewHandler creates a new OpenShift handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the cluster routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/openshift/query", h.Query)
}

// Query renders the cluster view for a free-text query.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httputil.Error(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]string{"response": h.service.ProcessQuery(r.Context(), q)})
}
