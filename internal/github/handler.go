package github

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/ctxlog"
	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// CommitLister lists commits from the configured repository.
type CommitLister interface {
	ListCommits(ctx context.Context) ([]domain.Commit, error)
}

// Handler handles HTTP requests for the source-control module.
type Handler struct {
	client    CommitLister
	validator *validator.Validate
}

// NewHandler creates a new GitHub handler.
func NewHandler(client CommitLister) *Handler {
	return &Handler{
		client:    client,
		validator: validator.New(),
	}
}

// RegisterRoutes registers the GitHub routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/github/search", h.Search)
}

// SearchRequest is the request body for a GitHub search.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// Search returns the repository commit listing. The query is accepted
// for wire compatibility; the upstream commit listing is unfiltered.
// Any upstream failure collapses to a generic 500 so credentials and
// API details never leak to the browser.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	commits, err := h.client.ListCommits(r.Context())
	if err != nil {
		ctxlog.FromContext(r.Context()).Error("github search failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "Failed to process GitHub search")
		return
	}
	httputil.Success(w, http.StatusOK, commits)
}
