package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the assistant chat box.
type Handler struct {
	dispatcher *Dispatcher
	log        *ConversationLog
	validator  *validator.Validate
}

// NewHandler creates a new assistant handler.
func NewHandler(dispatcher *Dispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		log:        NewConversationLog(),
		validator:  validator.New(),
	}
}

// RegisterRoutes registers the assistant routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assistant/messages", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Send)
	})
}

// List returns the conversation history in send order.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, h.log.Messages())
}

// SendRequest is the request body for a chat message.
type SendRequest struct {
	Message string `json:"message" validate:"required"`
}

// SendResponse carries both sides of one chat exchange.
type SendResponse struct {
	Message domain.Message `json:"message"`
	Reply   domain.Message `json:"reply"`
}

// Send appends the user message, dispatches it and appends the reply.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	userMsg := h.log.Append(domain.RoleUser, req.Message)
	reply := h.log.Append(domain.RoleAssistant, h.dispatcher.Dispatch(r.Context(), req.Message))

	httputil.JSON(w, http.StatusOK, SendResponse{Message: userMsg, Reply: reply})
}
