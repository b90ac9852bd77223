package logstore

import (
	"net/http"
	"strconv"

	"github.com/bissquit/incident-console/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the observability backends.
type Handler struct {
	splunk *SplunkClient
	kibana *KibanaClient
}

// NewHandler creates a new logstore handler.
func NewHandler(splunk *SplunkClient, kibana *KibanaClient) *Handler {
	return &Handler{splunk: splunk, kibana: kibana}
}

// RegisterRoutes registers the log and metrics search routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/logs/search", h.SearchLogs)
	r.Get("/metrics/query", h.QueryMetrics)
}

// SearchLogs runs a log search. Always 200; backend failures show up as
// an empty result list.
func (h *Handler) SearchLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httputil.Error(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs := h.splunk.SearchLogs(r.Context(), SplunkSearch{
		Query:    q,
		Earliest: r.URL.Query().Get("earliest"),
		Latest:   r.URL.Query().Get("latest"),
		Limit:    limit,
	})
	httputil.JSON(w, http.StatusOK, logs)
}

// QueryMetrics runs a metrics aggregation over one index.
func (h *Handler) QueryMetrics(w http.ResponseWriter, r *http.Request) {
	index := r.URL.Query().Get("index")
	if index == "" {
		httputil.Error(w, http.StatusBadRequest, "query parameter index is required")
		return
	}

	points := h.kibana.QueryMetrics(r.Context(), KibanaQuery{
		Index: index,
		From:  r.URL.Query().Get("from"),
		To:    r.URL.Query().Get("to"),
	})
	httputil.JSON(w, http.StatusOK, points)
}
