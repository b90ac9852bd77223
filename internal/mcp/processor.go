// Package mcp simulates a Mission Control Protocol endpoint: free-text
// queries resolve to one of a closed set of typed result variants built
// from fixed telemetry snapshots.
package mcp

import (
	"strings"

	"github.com/bissquit/incident-console/internal/domain"
)

// Process resolves an MCP query to its result variant. Matching is by
// marker substring, first match wins; unrecognized queries produce the
// error variant.
func Process(query string) domain.MCPResult {
	lower := strings.ToLower(query)

	switch {
	case strings.Contains(lower, "system.metrics"), strings.Contains(lower, "resource.utilization"):
		return domain.MCPResult{
			Type: domain.MCPResultMetrics,
			Metrics: &domain.MCPMetricsPayload{
				CPU:    domain.MCPCPU{Usage: "78%", Cores: 16, Temperature: "45°C"},
				Memory: domain.MCPMemory{Used: "24.5GB", Available: "32GB", Swap: "2GB"},
				Disk:   domain.MCPDisk{Read: "250MB/s", Write: "180MB/s", IOPS: 3500},
			},
		}

	case strings.Contains(lower, "service.health"):
		return domain.MCPResult{
			Type: domain.MCPResultHealth,
			Health: &domain.MCPHealthPayload{
				Services: []domain.MCPService{
					{Name: "API Gateway", Status: "healthy", Uptime: "99.99%"},
					{Name: "Auth Service", Status: "healthy", Uptime: "99.95%"},
					{Name: "Database", Status: "degraded", Uptime: "99.80%"},
					{Name: "Cache", Status: "healthy", Uptime: "99.99%"},
				},
			},
		}

	case strings.Contains(lower, "network.latency"), strings.Contains(lower, "response.times"):
		return domain.MCPResult{
			Type: domain.MCPResultPerformance,
			Performance: &domain.MCPPerformancePayload{
				Endpoints: []domain.MCPEndpoint{
					{Path: "/api/v1/users", P95: "120ms", P99: "250ms"},
					{Path: "/api/v1/orders", P95: "180ms", P99: "350ms"},
					{Path: "/api/v1/products", P95: "90ms", P99: "180ms"},
				},
			},
		}

	case strings.Contains(lower, "deployment.state"):
		return domain.MCPResult{
			Type: domain.MCPResultDeployment,
			Deployment: &domain.MCPDeploymentPayload{
				Services: []domain.MCPService{
					{Name: "Frontend", Version: "v2.1.0", Replicas: "3/3", Status: "deployed", Uptime: "100%"},
					{Name: "Backend API", Version: "v1.9.2", Replicas: "5/5", Status: "deployed", Uptime: "100%"},
					{Name: "Worker", Version: "v1.5.0", Replicas: "2/2", Status: "deployed", Uptime: "100%"},
				},
			},
		}

	case strings.Contains(lower, "security"), strings.Contains(lower, "auth"):
		return domain.MCPResult{
			Type: domain.MCPResultSecurity,
			Security: &domain.MCPSecurityPayload{
				Status:   "secure",
				LastScan: "2025-03-25 22:00:00",
				Findings: []domain.MCPFinding{
					{Severity: domain.SeverityMedium, Description: "TLS 1.2 in use, upgrade to 1.3 recommended"},
					{Severity: domain.SeverityLow, Description: "Non-critical headers missing"},
				},
			},
		}

	default:
		return domain.MCPResult{
			Type:    domain.MCPResultError,
			Message: "Query not recognized. Please use one of the suggested queries.",
		}
	}
}

// Categories returns the suggested query groups shown in the console's
// MCP modal.
func Categories() []domain.MCPCategory {
	return []domain.MCPCategory{
		{
			Name: "System Health",
			Queries: []string{
				"CHECK system.metrics",
				"MONITOR resource.utilization",
				"STATUS service.health",
			},
		},
		{
			Name: "Performance",
			Queries: []string{
				"ANALYZE cpu.usage",
				"MEASURE memory.consumption",
				"TEST network.latency",
				"TRACK response.times",
			},
		},
		{
			Name: "Configuration",
			Queries: []string{
				"GET service.config",
				"LIST env.variables",
				"SHOW deployment.state",
			},
		},
		{
			Name: "Diagnostics",
			Queries: []string{
				"DEBUG system.errors",
				"ANALYZE error.logs",
				"TRACE request.flow",
				"FIND bottlenecks",
			},
		},
		{
			Name: "Security",
			Queries: []string{
				"CHECK access.controls",
				"VERIFY auth.status",
				"AUDIT security.policies",
			},
		},
	}
}
