package incidents

import (
	"encoding/json"
	"net/http"

	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the incidents module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new incidents handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers the incident routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/incidents", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/query", h.Query)
		r.Post("/reply", h.Reply)
	})
}

// List returns the full incident dataset.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.List())
}

// Query returns the incident view for a free-text query.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httputil.Error(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	httputil.JSON(w, http.StatusOK, h.service.Query(q))
}

// ReplyRequest is the request body for the chat-style incident reply.
type ReplyRequest struct {
	Query string `json:"query" validate:"required"`
}

// Reply renders the chat-style answer for an incident query.
func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	var req ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"reply": h.service.Reply(req.Query)})
}
