package incidents

import (
	"testing"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCriticalReturnsHighPrioritySubset(t *testing.T) {
	src := Fixtures()

	m := Classify("show critical incidents", src)

	require.Equal(t, CategoryHighPriority, m.Category)
	var want []string
	for _, inc := range src {
		if inc.Priority == domain.PriorityHigh {
			want = append(want, inc.ID)
		}
	}
	assert.Equal(t, want, ids(m.Incidents), "source order must be preserved")
}

func TestClassifyRecentTopThreeDescending(t *testing.T) {
	m := Classify("any recent incidents?", Fixtures())

	require.Equal(t, CategoryRecent, m.Category)
	require.Len(t, m.Incidents, 3)
	assert.Equal(t, []string{"INC-005", "INC-002", "INC-001"}, ids(m.Incidents))
}

func TestClassifyRecentShortList(t *testing.T) {
	src := Fixtures()[:2]

	m := Classify("latest", src)

	require.Len(t, m.Incidents, 2)
	assert.True(t, m.Incidents[0].Timestamp >= m.Incidents[1].Timestamp)
}

func TestClassifyResolved(t *testing.T) {
	m := Classify("which ones are resolved", Fixtures())

	require.Equal(t, CategoryResolved, m.Category)
	assert.Equal(t, []string{"INC-004"}, ids(m.Incidents))
}

func TestClassifyPendingCoversActiveAndInvestigating(t *testing.T) {
	m := Classify("show open incidents", Fixtures())

	require.Equal(t, CategoryPending, m.Category)
	for _, inc := range m.Incidents {
		assert.Contains(t, []string{domain.IncidentStatusActive, domain.IncidentStatusInvestigating}, inc.Status)
	}
	assert.Len(t, m.Incidents, 5)
}

func TestClassifyTeam(t *testing.T) {
	m := Classify("incidents assigned to devops", Fixtures())

	require.Equal(t, CategoryTeam, m.Category)
	assert.Equal(t, "DevOps", m.Team)
	assert.Equal(t, []string{"INC-001", "INC-003"}, ids(m.Incidents))
}

func TestClassifyTeamUnknownLeavesViewUnchanged(t *testing.T) {
	src := Fixtures()

	m := Classify("incidents assigned to the frontend team", src)

	require.Equal(t, CategoryTeam, m.Category)
	assert.Empty(t, m.Team)
	assert.Equal(t, ids(src), ids(m.Incidents))
}

func TestClassifyService(t *testing.T) {
	m := Classify("what's affecting the database", Fixtures())

	require.Equal(t, CategoryService, m.Category)
	assert.Equal(t, []string{"INC-002"}, ids(m.Incidents))
}

func TestClassifyServiceUnknownLeavesViewUnchanged(t *testing.T) {
	src := Fixtures()

	m := Classify("what's affecting the mainframe service", src)

	assert.Equal(t, ids(src), ids(m.Incidents))
}

func TestClassifyTelemetry(t *testing.T) {
	m := Classify("cpu problems?", Fixtures())

	require.Equal(t, CategoryTelemetry, m.Category)
	for _, inc := range m.Incidents {
		assert.True(t, inc.Telemetry.CPU > 80 || inc.Telemetry.Memory > 80,
			"incident %s should exceed a telemetry threshold", inc.ID)
	}
	assert.Contains(t, ids(m.Incidents), "INC-005") // memory 82 qualifies even with cpu 75
}

func TestClassifyFallbackSearch(t *testing.T) {
	m := Classify("jenkins", Fixtures())

	require.Equal(t, CategorySearch, m.Category)
	assert.Equal(t, []string{"INC-001"}, ids(m.Incidents))
}

func TestClassifyFallbackSearchNoMatches(t *testing.T) {
	m := Classify("zzz-no-such-thing", Fixtures())

	require.Equal(t, CategorySearch, m.Category)
	assert.Empty(t, m.Incidents)
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "critical" outranks "resolved" in the rule table.
	m := Classify("critical resolved incidents", Fixtures())

	assert.Equal(t, CategoryHighPriority, m.Category)
}

func TestClassifyIsIdempotent(t *testing.T) {
	src := Fixtures()

	first := Classify("recent high load", src)
	second := Classify("recent high load", src)

	assert.Equal(t, first, second)
	assert.Equal(t, ids(Fixtures()), ids(src), "source list must not be mutated")
}

func TestClassifyDoesNotMutateSourceOnSort(t *testing.T) {
	src := Fixtures()
	before := ids(src)

	Classify("recent", src)

	assert.Equal(t, before, ids(src))
}

func ids(incs []domain.Incident) []string {
	var out []string
	for _, inc := range incs {
		out = append(out, inc.ID)
	}
	return out
}
