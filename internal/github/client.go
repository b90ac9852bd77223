// Package github proxies commit listings from the GitHub REST API for
// the configured repository.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.github.com"

// Client lists commits from a single configured repository.
type Client struct {
	baseURL    string
	owner      string
	repo       string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a GitHub API client.
func NewClient(cfg config.GitHubConfig) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		owner:      cfg.Owner,
		repo:       cfg.Repo,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

// Configured reports whether owner, repo and token are all set.
func (c *Client) Configured() bool {
	return c.owner != "" && c.repo != "" && c.token != ""
}

// ListCommits fetches the commit listing for the configured repository.
func (c *Client) ListCommits(ctx context.Context) ([]domain.Commit, error) {
	if !c.Configured() {
		return nil, domain.ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/commits", c.baseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", "incident-console")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest("github", strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("github api: %s - %s", resp.Status, string(body))
	}

	var commits []domain.Commit
	if err := json.NewDecoder(resp.Body).Decode(&commits); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return commits, nil
}
