package openshift

import (
	"fmt"
	"math"
	"strings"

	"github.com/bissquit/incident-console/internal/domain"
)

// healthLabel buckets a health percentage into a display label. The
// boundaries are inclusive on the lower edge: exactly 75 is Degraded,
// exactly 50 is Warning.
func healthLabel(percentage int) string {
	switch {
	case percentage == 100:
		return "🟢 Healthy"
	case percentage >= 75:
		return "🟡 Degraded"
	case percentage >= 50:
		return "🟠 Warning"
	default:
		return "🔴 Critical"
	}
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// FormatPods renders a namespace pod health summary with per-pod
// readiness conditions.
func FormatPods(namespace string, pods []domain.ClusterResource) string {
	running := 0
	for _, pod := range pods {
		if pod.Status.Phase == "Running" {
			running++
		}
	}
	health := percentage(running, len(pods))

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Pod Status in %s: %s\n", namespace, healthLabel(health))
	fmt.Fprintf(&b, "Health: %d%% (%d/%d pods running)\n\n", health, running, len(pods))

	blocks := make([]string, 0, len(pods))
	for _, pod := range pods {
		marker := "⚠️"
		if pod.IsReady() {
			marker = "✅"
		}
		var pb strings.Builder
		fmt.Fprintf(&pb, "%s %s:\n", marker, pod.Metadata.Name)
		phase := pod.Status.Phase
		if phase == "" {
			phase = "Unknown"
		}
		fmt.Fprintf(&pb, "   Status: %s", phase)
		if len(pod.Status.Conditions) > 0 {
			pb.WriteString("\n   Health Checks:")
			for _, c := range pod.Status.Conditions {
				fmt.Fprintf(&pb, "\n     • %s: %s", c.Type, checkMark(c.Status))
			}
		}
		blocks = append(blocks, pb.String())
	}
	b.WriteString(strings.Join(blocks, "\n\n"))
	return b.String()
}

// FormatDeployments renders a namespace deployment health summary with
// per-deployment replica availability.
func FormatDeployments(namespace string, deployments []domain.ClusterResource) string {
	healthy := 0
	for _, d := range deployments {
		if d.IsAvailable() {
			healthy++
		}
	}
	health := percentage(healthy, len(deployments))

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Deployment Status in %s: %s\n", namespace, healthLabel(health))
	fmt.Fprintf(&b, "Health: %d%% (%d/%d deployments healthy)\n\n", health, healthy, len(deployments))

	blocks := make([]string, 0, len(deployments))
	for _, d := range deployments {
		marker := "⚠️"
		if d.IsAvailable() {
			marker = "✅"
		}
		replicaHealth := percentage(d.Status.AvailableReplicas, d.Status.Replicas)

		var db strings.Builder
		fmt.Fprintf(&db, "%s %s:\n", marker, d.Metadata.Name)
		fmt.Fprintf(&db, "   Replicas: %d/%d (%d%% healthy)\n", d.Status.AvailableReplicas, d.Status.Replicas, replicaHealth)
		fmt.Fprintf(&db, "   Generation: %d", d.Status.ObservedGeneration)
		if len(d.Status.Conditions) > 0 {
			db.WriteString("\n   Conditions:")
			for _, c := range d.Status.Conditions {
				fmt.Fprintf(&db, "\n     • %s: %s", c.Type, checkMark(c.Status))
				if c.Message != "" {
					fmt.Fprintf(&db, " (%s)", c.Message)
				}
			}
		}
		blocks = append(blocks, db.String())
	}
	b.WriteString(strings.Join(blocks, "\n\n"))
	return b.String()
}

// FormatMetrics renders aggregate namespace usage against limits.
func FormatMetrics(namespace string, m *domain.ClusterMetrics) string {
	return fmt.Sprintf("📈 Cluster Metrics for %s:\n\n"+
		"CPU Usage: %s / %s\n"+
		"Memory Usage: %s / %s\n"+
		"Pods: %d running / %d total",
		namespace,
		m.CPU.Usage, m.CPU.Limit,
		m.Memory.Usage, m.Memory.Limit,
		m.Pods.Running, m.Pods.Total)
}

// FormatOverview renders the combined pods, deployments and metrics view.
func FormatOverview(namespace string, pods, deployments []domain.ClusterResource, m *domain.ClusterMetrics) string {
	running := 0
	for _, pod := range pods {
		if pod.Status.Phase == "Running" {
			running++
		}
	}
	healthy := 0
	for _, d := range deployments {
		if d.IsAvailable() {
			healthy++
		}
	}

	return fmt.Sprintf("🎯 OpenShift Cluster Overview for %s:\n\n"+
		"1. Resources:\n"+
		"   • Pods: %d running / %d total\n"+
		"   • Deployments: %d healthy / %d total\n\n"+
		"2. Performance:\n"+
		"   • CPU: %s / %s\n"+
		"   • Memory: %s / %s\n"+
		"   • Active Pods: %d / %d",
		namespace,
		running, len(pods),
		healthy, len(deployments),
		m.CPU.Usage, m.CPU.Limit,
		m.Memory.Usage, m.Memory.Limit,
		m.Pods.Running, m.Pods.Total)
}

func checkMark(status string) string {
	if status == "True" {
		return "✓"
	}
	return "✗"
}
