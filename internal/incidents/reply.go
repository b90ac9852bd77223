package incidents

import (
	"fmt"
	"strings"

	"github.com/bissquit/incident-console/internal/domain"
)

// Reply renders the chat-style answer for an incident query. It runs the
// exact same rule table as Classify so the chat reply and the list view
// can never disagree about which incidents a query selects; only the
// presentation differs (grouped blocks for team/service, flat blocks
// otherwise).
func Reply(query string, src []domain.Incident) string {
	m := Classify(query, src)

	switch m.Category {
	case CategoryHighPriority:
		if len(m.Incidents) == 0 {
			return "No high priority incidents found"
		}
		return renderBlocks(m.Incidents)

	case CategoryRecent:
		return renderBlocks(m.Incidents)

	case CategoryResolved:
		if len(m.Incidents) == 0 {
			return "No resolved incidents found"
		}
		return renderResolvedBlocks(m.Incidents)

	case CategoryPending:
		if len(m.Incidents) == 0 {
			return "No pending incidents found"
		}
		return renderBlocks(m.Incidents)

	case CategoryTeam:
		return renderGrouped(groupByTeam(m.Incidents))

	case CategoryService:
		return renderGrouped(groupByService(m.Incidents))

	case CategoryTelemetry:
		if len(m.Incidents) == 0 {
			return "No incidents with high resource usage found"
		}
		return renderBlocks(m.Incidents)

	case CategorySearch:
		if len(m.Incidents) == 0 {
			return "No incidents found matching your search"
		}
		return renderBlocks(m.Incidents)
	}

	// Unreachable: the category set is closed.
	return ""
}

func renderBlocks(incs []domain.Incident) string {
	blocks := make([]string, 0, len(incs))
	for _, inc := range incs {
		blocks = append(blocks, renderIncident(inc))
	}
	return strings.Join(blocks, "\n\n")
}

func renderIncident(inc domain.Incident) string {
	marker := "🔴"
	if inc.Status == domain.IncidentStatusResolved {
		marker = "✅"
	}
	return fmt.Sprintf("%s %s: %s\n   Status: %s | Priority: %s\n   🕒 %s · Team: %s",
		marker, inc.ID, inc.Title, inc.Status, inc.Priority, inc.Timestamp, inc.AssignedTeam)
}

func renderResolvedBlocks(incs []domain.Incident) string {
	blocks := make([]string, 0, len(incs))
	for _, inc := range incs {
		block := renderIncident(inc)
		if inc.HasRCA() {
			block += "\n   RCA: " + inc.RCA
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

type group struct {
	name      string
	incidents []domain.Incident
}

func groupByTeam(incs []domain.Incident) []group {
	return groupBy(incs, func(inc domain.Incident) []string {
		return []string{inc.AssignedTeam}
	})
}

func groupByService(incs []domain.Incident) []group {
	return groupBy(incs, func(inc domain.Incident) []string {
		return inc.AffectedServices
	})
}

// groupBy buckets incidents by key, preserving first-seen key order.
func groupBy(incs []domain.Incident, keys func(domain.Incident) []string) []group {
	index := make(map[string]int)
	var groups []group
	for _, inc := range incs {
		for _, key := range keys(inc) {
			i, ok := index[key]
			if !ok {
				i = len(groups)
				index[key] = i
				groups = append(groups, group{name: key})
			}
			groups[i].incidents = append(groups[i].incidents, inc)
		}
	}
	return groups
}

func renderGrouped(groups []group) string {
	if len(groups) == 0 {
		return "No incidents found matching your search"
	}
	blocks := make([]string, 0, len(groups))
	for _, g := range groups {
		var b strings.Builder
		fmt.Fprintf(&b, "%s (%d)", g.name, len(g.incidents))
		for _, inc := range g.incidents {
			fmt.Fprintf(&b, "\n   %s: %s [%s | %s]", inc.ID, inc.Title, inc.Status, inc.Priority)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
