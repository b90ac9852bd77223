// Package incidents provides the fixture-backed incident list and the
// keyword classifier that turns free-text queries into filtered views.
package incidents

import (
	"sort"
	"strings"

	"github.com/bissquit/incident-console/internal/domain"
)

// Category identifies which classifier rule matched a query.
type Category string

// Classifier categories, in rule-table order.
const (
	CategoryHighPriority Category = "high_priority"
	CategoryRecent       Category = "recent"
	CategoryResolved     Category = "resolved"
	CategoryPending      Category = "pending"
	CategoryTeam         Category = "team"
	CategoryService      Category = "service"
	CategoryTelemetry    Category = "telemetry"
	CategorySearch       Category = "search"
)

// recentLimit caps the "recent incidents" view.
const recentLimit = 3

// teamVocabulary lists the team names the classifier recognizes, in the
// order they are probed.
var teamVocabulary = []string{"DevOps", "Platform", "Security", "Database"}

// Match is the outcome of classifying one query: the rule that fired and
// the resulting incident view. Incidents is always a fresh slice; the
// source list is never mutated.
type Match struct {
	Category  Category
	Team      string // set for CategoryTeam when a known team was named
	Incidents []domain.Incident
}

// Classify routes a free-text query through the priority-ordered rule
// table. Exactly one rule fires (first match wins); the result is always
// a possibly-empty view over src with source order preserved, except for
// the recent rule which sorts by timestamp descending.
func Classify(query string, src []domain.Incident) Match {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "critical", "high priority", "urgent"):
		return Match{Category: CategoryHighPriority, Incidents: filter(src, func(inc domain.Incident) bool {
			return inc.Priority == domain.PriorityHigh
		})}

	case containsAny(q, "recent", "latest", "new"):
		return Match{Category: CategoryRecent, Incidents: mostRecent(src, recentLimit)}

	case containsAny(q, "resolved", "fixed", "completed"):
		return Match{Category: CategoryResolved, Incidents: filter(src, func(inc domain.Incident) bool {
			return inc.Status == domain.IncidentStatusResolved
		})}

	case containsAny(q, "pending", "open", "active"):
		return Match{Category: CategoryPending, Incidents: filter(src, func(inc domain.Incident) bool {
			return inc.Status == domain.IncidentStatusActive || inc.Status == domain.IncidentStatusInvestigating
		})}

	case containsAny(q, "team", "assigned"):
		team := matchTeam(q)
		if team == "" {
			// No known team named: the view is left unchanged.
			return Match{Category: CategoryTeam, Incidents: copyAll(src)}
		}
		return Match{Category: CategoryTeam, Team: team, Incidents: filter(src, func(inc domain.Incident) bool {
			return inc.AssignedTeam == team
		})}

	case containsAny(q, "service", "affecting"):
		matched := filter(src, func(inc domain.Incident) bool {
			for _, svc := range inc.AffectedServices {
				if strings.Contains(q, strings.ToLower(svc)) {
					return true
				}
			}
			return false
		})
		if len(matched) == 0 {
			// No named service matched: the view is left unchanged.
			return Match{Category: CategoryService, Incidents: copyAll(src)}
		}
		return Match{Category: CategoryService, Incidents: matched}

	case containsAny(q, "memory", "cpu", "performance"):
		return Match{Category: CategoryTelemetry, Incidents: filter(src, func(inc domain.Incident) bool {
			return inc.Telemetry.CPU > 80 || inc.Telemetry.Memory > 80
		})}

	default:
		return Match{Category: CategorySearch, Incidents: filter(src, func(inc domain.Incident) bool {
			return matchesSearch(q, inc)
		})}
	}
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func matchTeam(q string) string {
	for _, team := range teamVocabulary {
		if strings.Contains(q, strings.ToLower(team)) {
			return team
		}
	}
	return ""
}

func matchesSearch(q string, inc domain.Incident) bool {
	if strings.Contains(strings.ToLower(inc.Title), q) ||
		strings.Contains(strings.ToLower(inc.Status), q) ||
		strings.Contains(strings.ToLower(string(inc.Priority)), q) ||
		strings.Contains(strings.ToLower(inc.AssignedTeam), q) {
		return true
	}
	for _, svc := range inc.AffectedServices {
		if strings.Contains(strings.ToLower(svc), q) {
			return true
		}
	}
	return false
}

func filter(src []domain.Incident, keep func(domain.Incident) bool) []domain.Incident {
	out := make([]domain.Incident, 0, len(src))
	for _, inc := range src {
		if keep(inc) {
			out = append(out, inc)
		}
	}
	return out
}

func copyAll(src []domain.Incident) []domain.Incident {
	out := make([]domain.Incident, len(src))
	copy(out, src)
	return out
}

// mostRecent sorts by timestamp descending and takes the first limit
// entries. Timestamps use a fixed "YYYY-MM-DD hh:mm:ss" layout, so the
// lexicographic order is the chronological order.
func mostRecent(src []domain.Incident, limit int) []domain.Incident {
	sorted := copyAll(src)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
