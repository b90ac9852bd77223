package domain

// MCPResultType tags an MCP query result variant.
type MCPResultType string

// MCP result variants. The set is closed: rendering code switches over it
// exhaustively so an unhandled variant fails loudly instead of falling
// through.
const (
	MCPResultMetrics     MCPResultType = "metrics"
	MCPResultHealth      MCPResultType = "health"
	MCPResultPerformance MCPResultType = "performance"
	MCPResultDeployment  MCPResultType = "deployment"
	MCPResultSecurity    MCPResultType = "security"
	MCPResultError       MCPResultType = "error"
)

// MCPCPU is the CPU block of a metrics result.
type MCPCPU struct {
	Usage       string `json:"usage"`
	Cores       int    `json:"cores"`
	Temperature string `json:"temperature"`
}

// MCPMemory is the memory block of a metrics result.
type MCPMemory struct {
	Used      string `json:"used"`
	Available string `json:"available"`
	Swap      string `json:"swap"`
}

// MCPDisk is the disk block of a metrics result.
type MCPDisk struct {
	Read  string `json:"read"`
	Write string `json:"write"`
	IOPS  int    `json:"iops"`
}

// MCPMetricsPayload carries system metrics.
type MCPMetricsPayload struct {
	CPU    MCPCPU    `json:"cpu"`
	Memory MCPMemory `json:"memory"`
	Disk   MCPDisk   `json:"disk"`
}

// MCPService is one service row in a health or deployment result.
type MCPService struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version,omitempty"`
	Replicas string `json:"replicas,omitempty"`
}

// MCPHealthPayload carries the service-health listing.
type MCPHealthPayload struct {
	Services []MCPService `json:"services"`
}

// MCPEndpoint is one endpoint row of a performance result.
type MCPEndpoint struct {
	Path string `json:"path"`
	P95  string `json:"p95"`
	P99  string `json:"p99"`
}

// MCPPerformancePayload carries endpoint latency percentiles.
type MCPPerformancePayload struct {
	Endpoints []MCPEndpoint `json:"endpoints"`
}

// MCPDeploymentPayload carries the deployment-state listing.
type MCPDeploymentPayload struct {
	Services []MCPService `json:"services"`
}

// MCPFinding is one security scan finding.
type MCPFinding struct {
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// MCPSecurityPayload carries the security scan summary.
type MCPSecurityPayload struct {
	Status   string       `json:"status"`
	LastScan string       `json:"lastScan"`
	Findings []MCPFinding `json:"findings"`
}

// MCPResult is the tagged union returned by the MCP query processor.
// Exactly one payload matching Type is set; the error variant carries
// only Message.
type MCPResult struct {
	Type        MCPResultType          `json:"type"`
	Metrics     *MCPMetricsPayload     `json:"metrics,omitempty"`
	Health      *MCPHealthPayload      `json:"health,omitempty"`
	Performance *MCPPerformancePayload `json:"performance,omitempty"`
	Deployment  *MCPDeploymentPayload  `json:"deployment,omitempty"`
	Security    *MCPSecurityPayload    `json:"security,omitempty"`
	Message     string                 `json:"message,omitempty"`
}

// MCPCategory groups suggested MCP queries for the console's query modal.
type MCPCategory struct {
	Name    string   `json:"name"`
	Queries []string `json:"queries"`
}
