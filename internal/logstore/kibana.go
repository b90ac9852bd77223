package logstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/metrics"
)

// KibanaQuery parameterizes a metrics search against one index.
type KibanaQuery struct {
	Index string
	From  string
	To    string
}

// KibanaClient reads aggregated metrics through the Kibana API.
type KibanaClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewKibanaClient creates a Kibana metrics client.
func NewKibanaClient(cfg config.KibanaConfig, logger *slog.Logger) *KibanaClient {
	return &KibanaClient{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type kibanaResponse struct {
	Aggregations struct {
		MetricsOverTime struct {
			Buckets []struct {
				Key      int64 `json:"key"`
				DocCount int   `json:"doc_count"`
			} `json:"buckets"`
		} `json:"metrics_over_time"`
	} `json:"aggregations"`
}

// QueryMetrics runs a date-histogram aggregation over the index.
// Failures return an empty slice, matching the log-search contract.
func (c *KibanaClient) QueryMetrics(ctx context.Context, query KibanaQuery) []domain.MetricPoint {
	if c.baseURL == "" {
		return []domain.MetricPoint{}
	}

	from := query.From
	if from == "" {
		from = "now-15m"
	}
	to := query.To
	if to == "" {
		to = "now"
	}

	body, err := json.Marshal(map[string]any{
		"size": 0,
		"query": map[string]any{
			"bool": map[string]any{
				"must": []any{
					map[string]any{
						"range": map[string]any{
							"@timestamp": map[string]any{"gte": from, "lte": to},
						},
					},
				},
			},
		},
		"aggs": map[string]any{
			"metrics_over_time": map[string]any{
				"date_histogram": map[string]any{
					"field":          "@timestamp",
					"fixed_interval": "1m",
				},
			},
		},
	})
	if err != nil {
		c.fail("marshal kibana query", err)
		return []domain.MetricPoint{}
	}

	url := fmt.Sprintf("%s/api/metrics/%s/_search", c.baseURL, query.Index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.fail("build kibana request", err)
		return []domain.MetricPoint{}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("kbn-xsrf", "true")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail("kibana query", err)
		return []domain.MetricPoint{}
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest("kibana", strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		c.fail("kibana query", fmt.Errorf("unexpected status %d", resp.StatusCode))
		return []domain.MetricPoint{}
	}

	var out kibanaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.fail("decode kibana response", err)
		return []domain.MetricPoint{}
	}

	points := make([]domain.MetricPoint, 0, len(out.Aggregations.MetricsOverTime.Buckets))
	for _, bucket := range out.Aggregations.MetricsOverTime.Buckets {
		points = append(points, domain.MetricPoint{
			Timestamp: time.UnixMilli(bucket.Key).UTC().Format(time.RFC3339),
			Type:      "system_metric",
			Value:     float64(bucket.DocCount),
			Service:   "unknown",
		})
	}
	return points
}

func (c *KibanaClient) fail(op string, err error) {
	c.logger.Warn("metrics query failed, returning empty result", "op", op, "error", err)
	metrics.RecordFixtureFallback("kibana")
}
