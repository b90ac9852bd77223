package openshift

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/pkg/metrics"
)

// clusterAPI is the slice of the cluster client the service depends on.
type clusterAPI interface {
	Pods(ctx context.Context) ([]domain.ClusterResource, error)
	Deployments(ctx context.Context) ([]domain.ClusterResource, error)
	Metrics(ctx context.Context) (*domain.ClusterMetrics, error)
}

// Service answers cluster queries. Reads degrade to fixture data when
// the cluster is unreachable or not configured. The fallback is silent
// on the wire: it is logged and counted, never surfaced to the caller.
type Service struct {
	client    clusterAPI
	namespace string
	logger    *slog.Logger
}

// NewService creates a cluster query service. client may be nil for
// fixture-only operation.
func NewService(client clusterAPI, namespace string, logger *slog.Logger) *Service {
	return &Service{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// ProcessQuery routes a free-text cluster query to the matching
// formatter: pods, deployments, metrics, or the combined overview.
func (s *Service) ProcessQuery(ctx context.Context, query string) string {
	lower := strings.ToLower(query)

	switch {
	case strings.Contains(lower, "pod"):
		return FormatPods(s.namespace, s.pods(ctx))
	case strings.Contains(lower, "deployment"):
		return FormatDeployments(s.namespace, s.deployments(ctx))
	case strings.Contains(lower, "metrics"), strings.Contains(lower, "performance"):
		return FormatMetrics(s.namespace, s.clusterMetrics(ctx))
	default:
		return FormatOverview(s.namespace, s.pods(ctx), s.deployments(ctx), s.clusterMetrics(ctx))
	}
}

func (s *Service) pods(ctx context.Context) []domain.ClusterResource {
	if s.client != nil {
		pods, err := s.client.Pods(ctx)
		if err == nil {
			return pods
		}
		s.fallback("pods", err)
	}
	return PodFixtures(s.namespace)
}

func (s *Service) deployments(ctx context.Context) []domain.ClusterResource {
	if s.client != nil {
		deployments, err := s.client.Deployments(ctx)
		if err == nil {
			return deployments
		}
		s.fallback("deployments", err)
	}
	return DeploymentFixtures(s.namespace)
}

func (s *Service) clusterMetrics(ctx context.Context) *domain.ClusterMetrics {
	if s.client != nil {
		m, err := s.client.Metrics(ctx)
		if err == nil {
			return m
		}
		s.fallback("metrics", err)
	}
	return MetricsFixtures()
}

func (s *Service) fallback(resource string, err error) {
	s.logger.Warn("cluster read failed, serving fixture data",
		"resource", resource, "namespace", s.namespace, "error", err)
	metrics.RecordFixtureFallback("openshift")
}
