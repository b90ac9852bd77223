package incidents

import (
	"strings"
	"testing"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReplyHighPriority(t *testing.T) {
	reply := Reply("show critical incidents", Fixtures())

	assert.Contains(t, reply, "INC-001")
	assert.Contains(t, reply, "INC-002")
	assert.Contains(t, reply, "INC-004")
	assert.NotContains(t, reply, "INC-003")
}

func TestReplyHighPriorityEmpty(t *testing.T) {
	src := []domain.Incident{{ID: "INC-100", Priority: domain.PriorityLow}}

	reply := Reply("critical", src)

	assert.Equal(t, "No high priority incidents found", reply)
}

func TestReplyResolvedIncludesRCA(t *testing.T) {
	reply := Reply("resolved incidents", Fixtures())

	assert.Contains(t, reply, "INC-004")
	assert.Contains(t, reply, "RCA: Memory limit misconfiguration in deployment yaml")
}

func TestReplyTeamGroupsByTeam(t *testing.T) {
	reply := Reply("incidents by team", Fixtures())

	assert.Contains(t, reply, "DevOps (2)")
	assert.Contains(t, reply, "Platform (2)")
	assert.Contains(t, reply, "Security (1)")
}

func TestReplyServiceGroupsByService(t *testing.T) {
	reply := Reply("incidents affecting api gateway", Fixtures())

	// Only INC-002, INC-005 and INC-006 touch the API Gateway.
	assert.Contains(t, reply, "API Gateway")
	assert.NotContains(t, reply, "INC-001")
}

func TestReplyMatchesClassifySelection(t *testing.T) {
	src := Fixtures()
	queries := []string{"critical", "recent", "resolved", "open", "team devops", "cpu", "jenkins"}

	for _, q := range queries {
		m := Classify(q, src)
		reply := Reply(q, src)
		for _, inc := range m.Incidents {
			assert.True(t, strings.Contains(reply, inc.ID),
				"reply for %q must mention %s", q, inc.ID)
		}
	}
}

func TestReplySearchNoMatches(t *testing.T) {
	reply := Reply("zzz-nothing", Fixtures())

	assert.Equal(t, "No incidents found matching your search", reply)
}
