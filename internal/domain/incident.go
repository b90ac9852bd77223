package domain

// IncidentPriority represents the priority level of an incident.
type IncidentPriority string

// Incident priorities.
const (
	PriorityHigh   IncidentPriority = "High"
	PriorityMedium IncidentPriority = "Medium"
	PriorityLow    IncidentPriority = "Low"
)

// Incident statuses. Status is a free-form string by convention;
// these are the values the console produces and filters on.
const (
	IncidentStatusActive        = "Active"
	IncidentStatusInvestigating = "Investigating"
	IncidentStatusResolved      = "Resolved"
)

// Telemetry holds resource readings attached to an incident.
type Telemetry struct {
	CPU     float64 `json:"cpu"`
	Memory  float64 `json:"memory"`
	Latency float64 `json:"latency"`
}

// Incident is a console incident record. Incidents are seeded at process
// start and never written back to any store; views over them are always
// derived copies.
type Incident struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Status           string           `json:"status"`
	Priority         IncidentPriority `json:"priority"`
	Timestamp        string           `json:"timestamp"`
	AffectedServices []string         `json:"affectedServices"`
	AssignedTeam     string           `json:"assignedTeam"`
	Telemetry        Telemetry        `json:"telemetry"`
	RelatedIncidents []string         `json:"relatedIncidents"`
	RCA              string           `json:"rca"`
}

// RCAPending is the sentinel used when no root cause analysis exists yet.
const RCAPending = "Pending"

// HasRCA reports whether the incident carries a concluded root cause analysis.
func (i Incident) HasRCA() bool {
	return i.RCA != "" && i.RCA != RCAPending
}
