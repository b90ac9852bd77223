// Package logstore wraps the log and metrics search backends behind the
// console's observability tabs. Both backends fail soft: search errors
// are logged and produce an empty result set, never a caller error.
package logstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/metrics"
)

// SplunkSearch parameterizes a log search.
type SplunkSearch struct {
	Query    string
	Earliest string
	Latest   string
	Limit    int
}

// SplunkClient searches logs through the Splunk export API.
type SplunkClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSplunkClient creates a Splunk search client.
func NewSplunkClient(cfg config.SplunkConfig, logger *slog.Logger) *SplunkClient {
	return &SplunkClient{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type splunkResult struct {
	Results []struct {
		Time     string `json:"_time"`
		Source   string `json:"source"`
		Level    string `json:"level"`
		Severity string `json:"severity"`
		Message  string `json:"message"`
		Host     string `json:"host"`
		Index    string `json:"index"`
	} `json:"results"`
}

// SearchLogs runs a log search. Failures return an empty slice: the
// console renders "no logs" rather than an error banner.
func (c *SplunkClient) SearchLogs(ctx context.Context, search SplunkSearch) []domain.LogEntry {
	if c.baseURL == "" {
		return []domain.LogEntry{}
	}

	query := search.Query
	if !strings.Contains(query, "| table") {
		query += " | table _time, source, level, message, host, index"
	}
	earliest := search.Earliest
	if earliest == "" {
		earliest = "-24h"
	}
	latest := search.Latest
	if latest == "" {
		latest = "now"
	}
	limit := search.Limit
	if limit <= 0 {
		limit = 100
	}

	form := url.Values{}
	form.Set("search", query)
	form.Set("output_mode", "json")
	form.Set("earliest_time", earliest)
	form.Set("latest_time", latest)
	form.Set("count", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/services/search/jobs/export", strings.NewReader(form.Encode()))
	if err != nil {
		c.fail("build splunk request", err)
		return []domain.LogEntry{}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail("splunk search", err)
		return []domain.LogEntry{}
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest("splunk", strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		c.fail("splunk search", fmt.Errorf("unexpected status %d", resp.StatusCode))
		return []domain.LogEntry{}
	}

	var out splunkResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.fail("decode splunk response", err)
		return []domain.LogEntry{}
	}

	entries := make([]domain.LogEntry, 0, len(out.Results))
	for _, r := range out.Results {
		level := r.Level
		if level == "" {
			level = r.Severity
		}
		entries = append(entries, domain.LogEntry{
			Timestamp: r.Time,
			Source:    r.Source,
			Level:     logLevel(level, r.Message),
			Message:   r.Message,
			Host:      r.Host,
			Index:     r.Index,
		})
	}
	return entries
}

// RealtimeLogs searches the last five minutes of an index.
func (c *SplunkClient) RealtimeLogs(ctx context.Context, index string) []domain.LogEntry {
	return c.SearchLogs(ctx, SplunkSearch{
		Query:    "index=" + index,
		Earliest: "-5m",
		Latest:   "now",
		Limit:    50,
	})
}

func (c *SplunkClient) fail(op string, err error) {
	c.logger.Warn("log search failed, returning empty result", "op", op, "error", err)
	metrics.RecordFixtureFallback("splunk")
}

// logLevel derives a level label from the record, falling back to
// sniffing the message text.
func logLevel(level, message string) string {
	if level != "" {
		return strings.ToUpper(level)
	}
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "error"):
		return "ERROR"
	case strings.Contains(lower, "warn"):
		return "WARNING"
	default:
		return "INFO"
	}
}
