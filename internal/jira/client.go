package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

const searchMaxResults = 50

// searchFields limits the payload to what the console renders.
const searchFields = "summary,status,priority,assignee,created,issuetype,description"

// Client talks to the Jira Cloud REST API v3.
type Client struct {
	baseURL    string
	auth       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Jira API client. Credentials are sent as basic
// auth built from email and API token, per the Jira Cloud convention.
func NewClient(cfg config.JiraConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		auth:       base64.StdEncoding.EncodeToString([]byte(cfg.Email + ":" + cfg.APIToken)),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

type searchResponse struct {
	Issues []domain.JiraIssue `json:"issues"`
}

type errorResponse struct {
	ErrorMessages []string `json:"errorMessages"`
}

// Search runs a JQL query and returns the matching issues.
func (c *Client) Search(ctx context.Context, jql string) ([]domain.JiraIssue, error) {
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", fmt.Sprintf("%d", searchMaxResults))
	q.Set("fields", searchFields)

	var out searchResponse
	if err := c.do(ctx, http.MethodGet, "/rest/api/3/search?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	if out.Issues == nil {
		return []domain.JiraIssue{}, nil
	}
	return out.Issues, nil
}

// GetIssue fetches a single issue by key.
func (c *Client) GetIssue(ctx context.Context, key string) (*domain.JiraIssue, error) {
	var out domain.JiraIssue
	if err := c.do(ctx, http.MethodGet, "/rest/api/3/issue/"+url.PathEscape(key), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateIssue creates an issue from the raw Jira create payload.
func (c *Client) CreateIssue(ctx context.Context, payload any) (*domain.JiraIssue, error) {
	var out domain.JiraIssue
	if err := c.do(ctx, http.MethodPost, "/rest/api/3/issue", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIssue updates an issue from the raw Jira update payload.
func (c *Client) UpdateIssue(ctx context.Context, key string, payload any) (*domain.JiraIssue, error) {
	var out domain.JiraIssue
	if err := c.do(ctx, http.MethodPut, "/rest/api/3/issue/"+url.PathEscape(key), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+c.auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jira request: %w", err)
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest("jira", strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.ErrorMessages) > 0 {
			return fmt.Errorf("jira api: %s", apiErr.ErrorMessages[0])
		}
		return fmt.Errorf("jira api: unexpected status %d", resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
