package openshift

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bissquit/incident-console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.OpenShiftConfig{
		URL:       srv.URL,
		Token:     "token",
		Namespace: "default",
		Timeout:   2 * time.Second,
	})
}

func TestClientPods(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/namespaces/default/pods", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"items":[{"kind":"Pod","metadata":{"name":"web-1","namespace":"default"},"status":{"phase":"Running"}}]}`))
	})

	pods, err := client.Pods(context.Background())

	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, "web-1", pods[0].Metadata.Name)
}

func TestClientDeploymentsPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apis/apps/v1/namespaces/default/deployments", r.URL.Path)
		w.Write([]byte(`{"items":[]}`))
	})

	_, err := client.Deployments(context.Background())

	require.NoError(t, err)
}

func TestClientErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Pods(context.Background())

	assert.Error(t, err)
}

func TestClientMetricsAggregation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apis/metrics.k8s.io/v1beta1/namespaces/default/pods", r.URL.Path)
		w.Write([]byte(`{"items":[
			{"containers":[{"usage":{"cpu":"250m","memory":"512Mi"}}]},
			{"containers":[{"usage":{"cpu":"0.5","memory":"1Gi"}}]},
			{"containers":[{"usage":{"cpu":"","memory":""}}]}
		]}`))
	})

	m, err := client.Metrics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "750m", m.CPU.Usage)
	assert.Equal(t, "1536Mi", m.Memory.Usage)
	assert.Equal(t, 2, m.Pods.Running)
	assert.Equal(t, 3, m.Pods.Total)
}

func TestParseCPU(t *testing.T) {
	assert.Equal(t, int64(250), parseCPU("250m"))
	assert.Equal(t, int64(1500), parseCPU("1.5"))
	assert.Equal(t, int64(0), parseCPU(""))
	assert.Equal(t, int64(0), parseCPU("garbage"))
}

func TestParseMemory(t *testing.T) {
	assert.Equal(t, int64(1024), parseMemory("1Ki"))
	assert.Equal(t, int64(512*1024*1024), parseMemory("512Mi"))
	assert.Equal(t, int64(2*1024*1024*1024), parseMemory("2Gi"))
	assert.Equal(t, int64(100), parseMemory("100"))
	assert.Equal(t, int64(0), parseMemory("bad"))
}
