package openshift

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/metrics"
)

// cpuLimit and memLimit are namespace quota constants reported alongside
// live usage. The metrics API does not return limits for the namespace,
// so the console shows its quota instead.
const (
	cpuLimit = "4000m"
	memLimit = "8Gi"
)

// Client reads pods, deployments and pod metrics from a cluster API
// server using a bearer token.
type Client struct {
	baseURL    string
	token      string
	namespace  string
	httpClient *http.Client
}

// NewClient creates a cluster API client.
func NewClient(cfg config.OpenShiftConfig) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		token:      cfg.Token,
		namespace:  cfg.Namespace,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type resourceList struct {
	Items []domain.ClusterResource `json:"items"`
}

// Pods lists pods in the configured namespace.
func (c *Client) Pods(ctx context.Context) ([]domain.ClusterResource, error) {
	var out resourceList
	path := fmt.Sprintf("/api/v1/namespaces/%s/pods", c.namespace)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Deployments lists deployments in the configured namespace.
func (c *Client) Deployments(ctx context.Context) ([]domain.ClusterResource, error) {
	var out resourceList
	path := fmt.Sprintf("/apis/apps/v1/namespaces/%s/deployments", c.namespace)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

type podMetricsList struct {
	Items []struct {
		Containers []struct {
			Usage struct {
				CPU    string `json:"cpu"`
				Memory string `json:"memory"`
			} `json:"usage"`
		} `json:"containers"`
	} `json:"items"`
}

// Metrics aggregates per-pod usage from the metrics API into namespace
// totals. CPU is summed in millicores, memory in bytes.
func (c *Client) Metrics(ctx context.Context) (*domain.ClusterMetrics, error) {
	var out podMetricsList
	path := fmt.Sprintf("/apis/metrics.k8s.io/v1beta1/namespaces/%s/pods", c.namespace)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}

	var totalCPU int64
	var totalMem int64
	running := 0
	for _, pod := range out.Items {
		active := false
		for _, container := range pod.Containers {
			totalCPU += parseCPU(container.Usage.CPU)
			totalMem += parseMemory(container.Usage.Memory)
			if container.Usage.CPU != "" && container.Usage.Memory != "" {
				active = true
			}
		}
		if active {
			running++
		}
	}

	return &domain.ClusterMetrics{
		CPU:    domain.ResourceUsage{Usage: fmt.Sprintf("%dm", totalCPU), Limit: cpuLimit},
		Memory: domain.ResourceUsage{Usage: fmt.Sprintf("%dMi", totalMem/(1024*1024)), Limit: memLimit},
		Pods:   domain.PodCounts{Running: running, Total: len(out.Items)},
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cluster request: %w", err)
	}
	defer resp.Body.Close()

	metrics.RecordUpstreamRequest("openshift", strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cluster api: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseCPU converts a quantity like "250m" or "0.5" to millicores.
func parseCPU(q string) int64 {
	if q == "" {
		return 0
	}
	if strings.HasSuffix(q, "m") {
		n, err := strconv.ParseInt(strings.TrimSuffix(q, "m"), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	f, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 1000))
}

// parseMemory converts a quantity like "512Mi" or "1Gi" to bytes.
func parseMemory(q string) int64 {
	if q == "" {
		return 0
	}
	mult := int64(1)
	switch {
	case strings.HasSuffix(q, "Ki"):
		mult = 1024
		q = strings.TrimSuffix(q, "Ki")
	case strings.HasSuffix(q, "Mi"):
		mult = 1024 * 1024
		q = strings.TrimSuffix(q, "Mi")
	case strings.HasSuffix(q, "Gi"):
		mult = 1024 * 1024 * 1024
		q = strings.TrimSuffix(q, "Gi")
	}
	n, err := strconv.ParseInt(q, 10, 64)
	if err != nil {
		return 0
	}
	return n * mult
}
