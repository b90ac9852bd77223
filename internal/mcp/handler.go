package mcp

import (
	"net/http"

	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the MCP module.
type Handler struct{}

// NewHandler creates a new MCP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the MCP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/mcp", func(r chi.Router) {
		r.Get("/query", h.Query)
		r.Get("/categories", h.Categories)
	})
}

// Query resolves an MCP query to its typed result.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httputil.Error(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	httputil.JSON(w, http.StatusOK, Process(q))
}

// Categories lists the suggested query groups.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, Categories())
}
