// Package reports serves the console's static operational reports:
// recommendations, cluster health checks, RCA reports and the service
// dependency map.
package reports

import "github.com/bissquit/incident-console/internal/domain"

// Recommendations returns the proactive recommendation cards.
func Recommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Type:        domain.RecommendationHealth,
			Title:       "Database Connection Pool Optimization",
			Description: "Current connection pool size may be insufficient for peak loads",
			Severity:    domain.SeverityMedium,
			Action:      "Increase max pool size to 50 connections",
		},
		{
			Type:        domain.RecommendationSecurity,
			Title:       "SSL Certificate Expiration",
			Description: "Production SSL certificate will expire in 30 days",
			Severity:    domain.SeverityHigh,
			Action:      "Renew SSL certificate",
		},
		{
			Type:        domain.RecommendationPerformance,
			Title:       "API Response Time Degradation",
			Description: "P95 latency increased by 25% in last 24 hours",
			Severity:    domain.SeverityMedium,
			Action:      "Investigate slow queries and optimize",
		},
		{
			Type:        domain.RecommendationIncident,
			Title:       "Error Rate Spike",
			Description: "Payment service showing 5% error rate increase",
			Severity:    domain.SeverityHigh,
			Action:      "Check payment gateway integration",
		},
		{
			Type:        domain.RecommendationDevOps,
			Title:       "Container Resource Limits",
			Description: "Some containers running without resource limits",
			Severity:    domain.SeverityLow,
			Action:      "Set CPU and memory limits",
		},
	}
}

// HealthChecks returns the cluster health-check report.
func HealthChecks() []domain.HealthCheckItem {
	return []domain.HealthCheckItem{
		{
			Category: "Authentication Service",
			Status:   domain.HealthStatusHealthy,
			Details: domain.HealthCheckDetails{
				PodCount: 3, ReadyPods: 3, CPUUsage: 45, MemoryUsage: 62, Restarts: 0,
				Uptime:     "15d 7h",
				NodeStatus: "Running on nodes: worker-1, worker-2, worker-3",
			},
			Namespace: "auth-system",
			Timestamp: "2025-03-25 23:05:00",
		},
		{
			Category: "Payment Processing Pods",
			Status:   domain.HealthStatusWarning,
			Details: domain.HealthCheckDetails{
				PodCount: 5, ReadyPods: 4, CPUUsage: 78, MemoryUsage: 85, Restarts: 2,
				Uptime:     "7d 12h",
				NodeStatus: "Pod payment-proc-3 pending on worker-2",
			},
			Namespace: "payment-system",
			Timestamp: "2025-03-25 23:06:00",
		},
		{
			Category: "Order Management Service",
			Status:   domain.HealthStatusCritical,
			Details: domain.HealthCheckDetails{
				PodCount: 4, ReadyPods: 2, CPUUsage: 92, MemoryUsage: 95, Restarts: 5,
				Uptime:     "2d 4h",
				NodeStatus: "CrashLoopBackOff on worker-1",
			},
			Namespace: "order-system",
			Timestamp: "2025-03-25 23:07:00",
		},
		{
			Category: "API Gateway Pods",
			Status:   domain.HealthStatusHealthy,
			Details: domain.HealthCheckDetails{
				PodCount: 6, ReadyPods: 6, CPUUsage: 55, MemoryUsage: 60, Restarts: 0,
				Uptime:     "30d 2h",
				NodeStatus: "Running on all nodes",
			},
			Namespace: "gateway",
			Timestamp: "2025-03-25 23:08:00",
		},
		{
			Category: "Database Cluster",
			Status:   domain.HealthStatusWarning,
			Details: domain.HealthCheckDetails{
				PodCount: 3, ReadyPods: 3, CPUUsage: 82, MemoryUsage: 88, Restarts: 1,
				Uptime:     "45d 3h",
				NodeStatus: "High load on primary node",
			},
			Namespace: "database",
			Timestamp: "2025-03-25 23:09:00",
		},
		{
			Category: "Cache Service",
			Status:   domain.HealthStatusHealthy,
			Details: domain.HealthCheckDetails{
				PodCount: 4, ReadyPods: 4, CPUUsage: 40, MemoryUsage: 55, Restarts: 0,
				Uptime:     "20d 15h",
				NodeStatus: "Running on nodes: worker-1, worker-4",
			},
			Namespace: "cache-system",
			Timestamp: "2025-03-25 23:10:00",
		},
	}
}

// RCAReports returns the root-cause-analysis reports.
func RCAReports() []domain.RCAReport {
	return []domain.RCAReport{
		{
			IssueID:   "DEVOPS-123",
			Summary:   "Production Pipeline Failure",
			Impact:    "Critical - Delayed deployment of payment service updates affecting 15% of transactions",
			RootCause: "Jenkins agent disconnection during crucial deployment step caused by network partition. The backup agent failed to take over due to misconfigured failover settings.",
			Timeline: "2025-03-25 21:30:00 - Issue detected\n" +
				"2025-03-25 21:35:00 - Alert triggered\n" +
				"2025-03-25 21:45:00 - DevOps team engaged\n" +
				"2025-03-25 22:15:00 - Root cause identified\n" +
				"2025-03-25 22:30:00 - Fix implemented",
			Resolution: "Restored network connectivity and updated Jenkins agent failover configuration. Implemented proper health checks for agent availability.",
			PreventiveMeasures: []string{
				"Implement redundant network paths for Jenkins agents",
				"Add automated failover testing in pre-production",
				"Enhance monitoring for agent health metrics",
				"Update runbook with failover procedures",
			},
		},
		{
			IssueID:   "DEVOPS-124",
			Summary:   "SonarQube Code Quality Gate Failure",
			Impact:    "Medium - Blocked merge of feature branch affecting team velocity",
			RootCause: "Recent migration to new SonarQube version changed default quality profiles. Legacy code patterns now trigger new security hotspots and code smells.",
			Timeline: "2025-03-25 22:15:00 - Quality gate failure detected\n" +
				"2025-03-25 22:20:00 - Development team notified\n" +
				"2025-03-25 22:45:00 - Analysis completed",
			Resolution: "Updated quality profiles to match organization standards. Created technical debt backlog for addressing legacy code issues.",
			PreventiveMeasures: []string{
				"Create automated quality profile backup",
				"Implement test runs for major SonarQube updates",
				"Document quality gate configuration changes",
				"Set up regular code quality review meetings",
			},
		},
		{
			IssueID:   "DEVOPS-125",
			Summary:   "ArgoCD Sync Failure",
			Impact:    "High - Prevented automatic deployment of critical security patches",
			RootCause: "Helm chart version mismatch between environments and invalid RBAC permissions for ArgoCD service account in target namespace.",
			Timeline: "2025-03-25 22:30:00 - Sync failure detected\n" +
				"2025-03-25 22:35:00 - Platform team alerted\n" +
				"2025-03-25 22:50:00 - RBAC issues identified\n" +
				"2025-03-25 23:05:00 - Resolution implemented",
			Resolution: "Standardized Helm chart versions across environments and corrected RBAC permissions for ArgoCD service account.",
			PreventiveMeasures: []string{
				"Implement version control for Helm charts",
				"Add automated RBAC validation tests",
				"Create environment parity checker",
				"Set up automated drift detection",
			},
		},
	}
}

// Dependencies returns the service dependency map.
func Dependencies() []domain.ServiceDependency {
	return []domain.ServiceDependency{
		{Name: "API Gateway", Type: "upstream", Status: domain.DependencyHealthy, Latency: 45},
		{Name: "Database", Type: "downstream", Status: domain.DependencyDegraded, Latency: 150},
		{Name: "Cache", Type: "downstream", Status: domain.DependencyHealthy, Latency: 5},
	}
}
