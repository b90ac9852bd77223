package domain

// RecommendationType categorizes a proactive recommendation.
type RecommendationType string

// Recommendation types.
const (
	RecommendationHealth      RecommendationType = "health"
	RecommendationSecurity    RecommendationType = "security"
	RecommendationPerformance RecommendationType = "performance"
	RecommendationIncident    RecommendationType = "incident"
	RecommendationDevOps      RecommendationType = "devops"
)

// Severity is a high/medium/low severity label shared by recommendations
// and security findings.
type Severity string

// Severity levels.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Recommendation is a static proactive-recommendation card.
type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Severity    Severity           `json:"severity"`
	Action      string             `json:"action"`
}

// HealthStatus labels a health-check category.
type HealthStatus string

// Health statuses.
const (
	HealthStatusHealthy  HealthStatus = "healthy"
	HealthStatusWarning  HealthStatus = "warning"
	HealthStatusCritical HealthStatus = "critical"
)

// HealthCheckDetails carries the pod-level readings behind a health check.
type HealthCheckDetails struct {
	PodCount    int    `json:"podCount"`
	ReadyPods   int    `json:"readyPods"`
	CPUUsage    int    `json:"cpuUsage"`
	MemoryUsage int    `json:"memoryUsage"`
	Restarts    int    `json:"restarts"`
	Uptime      string `json:"uptime"`
	NodeStatus  string `json:"nodeStatus"`
}

// HealthCheckItem is one entry of the cluster health-check report.
type HealthCheckItem struct {
	Category  string             `json:"category"`
	Status    HealthStatus       `json:"status"`
	Details   HealthCheckDetails `json:"details"`
	Namespace string             `json:"namespace"`
	Timestamp string             `json:"timestamp"`
}

// RCAReport is a root-cause-analysis report keyed by its issue ID.
type RCAReport struct {
	IssueID            string   `json:"issueId"`
	Summary            string   `json:"summary"`
	Impact             string   `json:"impact"`
	RootCause          string   `json:"rootCause"`
	Timeline           string   `json:"timeline"`
	Resolution         string   `json:"resolution"`
	PreventiveMeasures []string `json:"preventiveMeasures"`
}

// DependencyStatus labels a service dependency's health.
type DependencyStatus string

// Dependency statuses.
const (
	DependencyHealthy  DependencyStatus = "healthy"
	DependencyDegraded DependencyStatus = "degraded"
	DependencyDown     DependencyStatus = "down"
)

// ServiceDependency is one edge of the console's dependency map.
type ServiceDependency struct {
	Name    string           `json:"name"`
	Type    string           `json:"type"` // upstream or downstream
	Status  DependencyStatus `json:"status"`
	Latency int              `json:"latency"`
}
