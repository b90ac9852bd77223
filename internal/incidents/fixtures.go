package incidents

import "github.com/bissquit/incident-console/internal/domain"

// Fixtures returns the seeded incident dataset. The console never writes
// incidents back anywhere; this list is the whole universe for the
// lifetime of the process.
func Fixtures() []domain.Incident {
	return []domain.Incident{
		{
			ID:               "INC-001",
			Title:            "Jenkins Pipeline Failure",
			Status:           domain.IncidentStatusActive,
			Priority:         domain.PriorityHigh,
			Timestamp:        "2025-03-25 22:45:00",
			AffectedServices: []string{"CI/CD", "Deployment", "Build System"},
			AssignedTeam:     "DevOps",
			Telemetry:        domain.Telemetry{CPU: 85, Memory: 92, Latency: 1200},
			RelatedIncidents: []string{"INC-003"},
			RCA:              domain.RCAPending,
		},
		{
			ID:               "INC-002",
			Title:            "Database Connection Timeout",
			Status:           domain.IncidentStatusInvestigating,
			Priority:         domain.PriorityHigh,
			Timestamp:        "2025-03-25 23:00:00",
			AffectedServices: []string{"Database", "API Gateway", "User Service"},
			AssignedTeam:     "Database",
			Telemetry:        domain.Telemetry{CPU: 95, Memory: 88, Latency: 5000},
			RelatedIncidents: []string{},
			RCA:              "High connection pool exhaustion due to connection leaks",
		},
		{
			ID:               "INC-003",
			Title:            "SonarQube Quality Gate Failure",
			Status:           domain.IncidentStatusActive,
			Priority:         domain.PriorityMedium,
			Timestamp:        "2025-03-25 22:30:00",
			AffectedServices: []string{"Code Quality", "CI/CD"},
			AssignedTeam:     "DevOps",
			Telemetry:        domain.Telemetry{CPU: 45, Memory: 60, Latency: 800},
			RelatedIncidents: []string{"INC-001"},
			RCA:              domain.RCAPending,
		},
		{
			ID:               "INC-004",
			Title:            "Kubernetes Pod OOM",
			Status:           domain.IncidentStatusResolved,
			Priority:         domain.PriorityHigh,
			Timestamp:        "2025-03-25 21:15:00",
			AffectedServices: []string{"Order Service", "Payment Service"},
			AssignedTeam:     "Platform",
			Telemetry:        domain.Telemetry{CPU: 100, Memory: 98, Latency: 3000},
			RelatedIncidents: []string{},
			RCA:              "Memory limit misconfiguration in deployment yaml",
		},
		{
			ID:               "INC-005",
			Title:            "API Gateway Latency Spike",
			Status:           domain.IncidentStatusActive,
			Priority:         domain.PriorityMedium,
			Timestamp:        "2025-03-25 23:10:00",
			AffectedServices: []string{"API Gateway", "All Services"},
			AssignedTeam:     "Platform",
			Telemetry:        domain.Telemetry{CPU: 75, Memory: 82, Latency: 2500},
			RelatedIncidents: []string{},
			RCA:              domain.RCAPending,
		},
		{
			ID:               "INC-006",
			Title:            "SSL Certificate Expiry Warning",
			Status:           domain.IncidentStatusInvestigating,
			Priority:         domain.PriorityLow,
			Timestamp:        "2025-03-25 22:00:00",
			AffectedServices: []string{"Security", "API Gateway"},
			AssignedTeam:     "Security",
			Telemetry:        domain.Telemetry{CPU: 30, Memory: 45, Latency: 500},
			RelatedIncidents: []string{},
			RCA:              "Certificate renewal process delayed",
		},
	}
}
