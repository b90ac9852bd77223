package openshift

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/stretchr/testify/assert"
)

type mockClusterAPI struct {
	pods        []domain.ClusterResource
	deployments []domain.ClusterResource
	metrics     *domain.ClusterMetrics
	err         error
}

func (m *mockClusterAPI) Pods(context.Context) ([]domain.ClusterResource, error) {
	return m.pods, m.err
}

func (m *mockClusterAPI) Deployments(context.Context) ([]domain.ClusterResource, error) {
	return m.deployments, m.err
}

func (m *mockClusterAPI) Metrics(context.Context) (*domain.ClusterMetrics, error) {
	return m.metrics, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessQueryRoutesPods(t *testing.T) {
	svc := NewService(nil, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "show me the pods")

	assert.Contains(t, out, "Pod Status in default")
}

func TestProcessQueryRoutesDeployments(t *testing.T) {
	svc := NewService(nil, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "deployment health")

	assert.Contains(t, out, "Deployment Status in default")
}

func TestProcessQueryRoutesMetrics(t *testing.T) {
	svc := NewService(nil, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "cluster performance")

	assert.Contains(t, out, "Cluster Metrics for default")
}

func TestProcessQueryDefaultsToOverview(t *testing.T) {
	svc := NewService(nil, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "how is everything")

	assert.Contains(t, out, "OpenShift Cluster Overview for default")
}

func TestProcessQueryPodBeatsDeployment(t *testing.T) {
	svc := NewService(nil, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "pods and deployments")

	assert.Contains(t, out, "Pod Status in default")
}

func TestProcessQueryUsesLiveData(t *testing.T) {
	api := &mockClusterAPI{pods: []domain.ClusterResource{{
		Metadata: domain.ResourceMetadata{Name: "live-pod"},
		Status:   domain.ResourceStatus{Phase: "Running"},
	}}}
	svc := NewService(api, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "pods")

	assert.Contains(t, out, "live-pod")
	assert.NotContains(t, out, "frontend-pod-1")
}

func TestProcessQueryFallsBackSilentlyOnError(t *testing.T) {
	api := &mockClusterAPI{err: errors.New("connection refused")}
	svc := NewService(api, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "pods")

	assert.Contains(t, out, "frontend-pod-1")
	assert.NotContains(t, out, "connection refused")
}

func TestProcessQueryOverviewFallsBackPerResource(t *testing.T) {
	api := &mockClusterAPI{err: errors.New("unreachable")}
	svc := NewService(api, "default", testLogger())

	out := svc.ProcessQuery(context.Background(), "overview please")

	assert.Contains(t, out, "Pods: 3 running / 3 total")
	assert.Contains(t, out, "CPU: 450m / 1000m")
}
