package jira

import (
	"encoding/json"
	"net/http"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the issue-tracker module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new Jira handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers the Jira routes. The surface is action-based
// to stay wire compatible with the console frontend.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/jira", h.Get)
	r.Post("/jira", h.Post)
}

// Get dispatches on the action query parameter: search runs a
// natural-language issue search, issue fetches a single issue by key.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	if action == "" {
		httputil.Error(w, http.StatusBadRequest, "Action parameter is required")
		return
	}

	switch action {
	case "search":
		query := r.URL.Query().Get("query")
		if query == "" {
			httputil.Error(w, http.StatusBadRequest, "Query parameter is required for search action")
			return
		}
		issues, err := h.service.Search(r.Context(), query)
		if err != nil {
			httputil.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httputil.JSON(w, http.StatusOK, issues)

	case "issue":
		key := r.URL.Query().Get("issueKey")
		if key == "" {
			httputil.Error(w, http.StatusBadRequest, "Issue key is required for issue action")
			return
		}
		issue, err := h.service.GetIssue(r.Context(), key)
		if err != nil {
			httputil.HandleError(r.Context(), w, err, issueErrorMappings)
			return
		}
		httputil.JSON(w, http.StatusOK, issue)

	default:
		httputil.Error(w, http.StatusBadRequest, "Invalid action")
	}
}

var issueErrorMappings = []httputil.ErrorMapping{
	{Error: domain.ErrIssueNotFound, Status: http.StatusNotFound},
}

// MutateRequest is the request body for issue create and update calls.
type MutateRequest struct {
	Action string         `json:"action" validate:"required,oneof=create update"`
	Data   map[string]any `json:"data"`
}

// Post dispatches on the action body field: create makes a new issue,
// update changes an existing one.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	var req MutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	switch req.Action {
	case "create":
		if req.Data == nil {
			httputil.Error(w, http.StatusBadRequest, "Data is required for create action")
			return
		}
		issue, err := h.service.CreateIssue(r.Context(), req.Data)
		if err != nil {
			httputil.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httputil.JSON(w, http.StatusOK, issue)

	case "update":
		key, _ := req.Data["issueKey"].(string)
		updateData, _ := req.Data["updateData"].(map[string]any)
		if key == "" || updateData == nil {
			httputil.Error(w, http.StatusBadRequest, "Issue key and update data are required for update action")
			return
		}
		issue, err := h.service.UpdateIssue(r.Context(), key, updateData)
		if err != nil {
			httputil.HandleError(r.Context(), w, err, issueErrorMappings)
			return
		}
		httputil.JSON(w, http.StatusOK, issue)
	}
}
