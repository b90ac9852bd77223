package domain

// ResourceCondition is a status condition on a cluster resource.
type ResourceCondition struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ResourceMetadata identifies a cluster resource.
type ResourceMetadata struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// ResourceStatus carries the subset of pod/deployment status the console
// reads: phase and conditions for pods, replica counts for deployments.
type ResourceStatus struct {
	Phase              string              `json:"phase,omitempty"`
	Conditions         []ResourceCondition `json:"conditions,omitempty"`
	Replicas           int                 `json:"replicas,omitempty"`
	AvailableReplicas  int                 `json:"availableReplicas,omitempty"`
	ObservedGeneration int64               `json:"observedGeneration,omitempty"`
}

// ClusterResource is a pod or deployment as returned by the cluster API.
type ClusterResource struct {
	Kind     string           `json:"kind"`
	Metadata ResourceMetadata `json:"metadata"`
	Status   ResourceStatus   `json:"status"`
}

// IsReady reports whether the resource has a Ready condition set to True.
func (r ClusterResource) IsReady() bool {
	return r.hasCondition("Ready")
}

// IsAvailable reports whether the resource has an Available condition set to True.
func (r ClusterResource) IsAvailable() bool {
	return r.hasCondition("Available")
}

func (r ClusterResource) hasCondition(condType string) bool {
	for _, c := range r.Status.Conditions {
		if c.Type == condType && c.Status == "True" {
			return true
		}
	}
	return false
}

// ResourceUsage is a usage/limit pair rendered as cluster quantities ("450m", "1.2Gi").
type ResourceUsage struct {
	Usage string `json:"usage"`
	Limit string `json:"limit"`
}

// PodCounts counts running pods against the namespace total.
type PodCounts struct {
	Running int `json:"running"`
	Total   int `json:"total"`
}

// ClusterMetrics aggregates namespace CPU/memory usage and pod counts.
type ClusterMetrics struct {
	CPU    ResourceUsage `json:"cpu"`
	Memory ResourceUsage `json:"memory"`
	Pods   PodCounts     `json:"pods"`
}
