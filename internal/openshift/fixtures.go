package openshift

import "github.com/bissquit/incident-console/internal/domain"

// PodFixtures returns the seeded pod list used when the cluster is not
// reachable or not configured.
func PodFixtures(namespace string) []domain.ClusterResource {
	pod := func(name string) domain.ClusterResource {
		return domain.ClusterResource{
			Kind:     "Pod",
			Metadata: domain.ResourceMetadata{Name: name, Namespace: namespace},
			Status: domain.ResourceStatus{
				Phase: "Running",
				Conditions: []domain.ResourceCondition{
					{Type: "Ready", Status: "True"},
					{Type: "PodScheduled", Status: "True"},
				},
			},
		}
	}
	return []domain.ClusterResource{
		pod("frontend-pod-1"),
		pod("backend-pod-1"),
		pod("database-pod-1"),
	}
}

// DeploymentFixtures returns the seeded deployment list.
func DeploymentFixtures(namespace string) []domain.ClusterResource {
	deployment := func(name string, replicas, available int) domain.ClusterResource {
		return domain.ClusterResource{
			Kind:     "Deployment",
			Metadata: domain.ResourceMetadata{Name: name, Namespace: namespace},
			Status: domain.ResourceStatus{
				Replicas:           replicas,
				AvailableReplicas:  available,
				ObservedGeneration: 1,
				Conditions: []domain.ResourceCondition{
					{Type: "Available", Status: "True"},
					{Type: "Progressing", Status: "True", Message: "ReplicaSet has successfully progressed."},
				},
			},
		}
	}
	return []domain.ClusterResource{
		deployment("frontend", 2, 2),
		deployment("backend", 2, 2),
		deployment("database", 1, 1),
	}
}

// MetricsFixtures returns the seeded namespace metrics.
func MetricsFixtures() *domain.ClusterMetrics {
	return &domain.ClusterMetrics{
		CPU:    domain.ResourceUsage{Usage: "450m", Limit: "1000m"},
		Memory: domain.ResourceUsage{Usage: "1.2Gi", Limit: "2Gi"},
		Pods:   domain.PodCounts{Running: 3, Total: 3},
	}
}
