package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/bissquit/incident-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.JiraConfig{
		BaseURL:   srv.URL,
		Email:     "me@example.com",
		APIToken:  "token",
		Timeout:   2 * time.Second,
		RateLimit: 100,
	})
}

func TestClientSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)
		assert.Equal(t, "project = KAN ORDER BY created DESC", r.URL.Query().Get("jql"))
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"issues": []domain.JiraIssue{{Key: "KAN-4"}},
		})
	})

	issues, err := client.Search(context.Background(), "project = KAN ORDER BY created DESC")

	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "KAN-4", issues[0].Key)
}

func TestClientSearchEmptyIssuesField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	})

	issues, err := client.Search(context.Background(), "project = KAN")

	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestClientSurfacesAPIErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessages":["The value 'NOPE' does not exist for the field 'project'."]}`))
	})

	_, err := client.Search(context.Background(), "project = NOPE")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist for the field")
}

func TestClientGetIssue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/KAN-3", r.URL.Path)
		json.NewEncoder(w).Encode(domain.JiraIssue{Key: "KAN-3"})
	})

	issue, err := client.GetIssue(context.Background(), "KAN-3")

	require.NoError(t, err)
	assert.Equal(t, "KAN-3", issue.Key)
}

func TestClientCreateIssue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/3/issue", r.URL.Path)
		json.NewEncoder(w).Encode(domain.JiraIssue{Key: "KAN-9"})
	})

	issue, err := client.CreateIssue(context.Background(), map[string]any{"fields": map[string]any{"summary": "x"}})

	require.NoError(t, err)
	assert.Equal(t, "KAN-9", issue.Key)
}
