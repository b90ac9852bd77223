package github

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLister struct {
	commits []domain.Commit
	err     error
}

func (m *mockLister) ListCommits(context.Context) ([]domain.Commit, error) {
	return m.commits, m.err
}

func newTestRouter(lister CommitLister) chi.Router {
	r := chi.NewRouter()
	NewHandler(lister).RegisterRoutes(r)
	return r
}

func TestSearchReturnsCommits(t *testing.T) {
	lister := &mockLister{commits: []domain.Commit{{SHA: "abc123"}}}
	r := newTestRouter(lister)

	req := httptest.NewRequest(http.MethodPost, "/github/search", bytes.NewBufferString(`{"query":"fix"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data"`)
	assert.Contains(t, rec.Body.String(), "abc123")
}

func TestSearchRequiresQuery(t *testing.T) {
	r := newTestRouter(&mockLister{})

	req := httptest.NewRequest(http.MethodPost, "/github/search", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchCollapsesUpstreamErrors(t *testing.T) {
	lister := &mockLister{err: errors.New("github api: 401 Unauthorized - Bad credentials")}
	r := newTestRouter(lister)

	req := httptest.NewRequest(http.MethodPost, "/github/search", bytes.NewBufferString(`{"query":"fix"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to process GitHub search")
	assert.NotContains(t, rec.Body.String(), "credentials")
}

func TestSearchNotConfigured(t *testing.T) {
	lister := &mockLister{err: domain.ErrNotConfigured}
	r := newTestRouter(lister)

	req := httptest.NewRequest(http.MethodPost, "/github/search", bytes.NewBufferString(`{"query":"fix"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
