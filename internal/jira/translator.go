package jira

import (
	"fmt"
	"strings"
)

// jqlRule maps natural-language markers to a JQL template. Templates are
// formatted with the project key.
type jqlRule struct {
	markers  []string
	template string
}

// jqlRules is evaluated in order; the first rule with a matching marker
// wins. Keep the order stable: several markers overlap ("issues" is also
// a marker of the bugs rule) and reordering changes which template fires.
var jqlRules = []jqlRule{
	{[]string{"not assigned", "unassigned", "no assignee"}, "project = %s AND assignee is EMPTY ORDER BY created DESC"},
	{[]string{"assigned"}, "project = %s AND assignee is not EMPTY ORDER BY created DESC"},
	{[]string{"my issues", "assigned to me", "my tasks"}, "project = %s AND assignee = currentUser() ORDER BY created DESC"},
	{[]string{"high priority", "urgent"}, "project = %s AND priority = High ORDER BY created DESC"},
	{[]string{"in progress", "working on"}, "project = %s AND status = \"In Progress\" ORDER BY created DESC"},
	{[]string{"all issues", "all jira", "show all", "list all"}, "project = %s ORDER BY created DESC"},
	{[]string{"jira stories", "show stories", "list stories"}, "project = %s AND issuetype = Story ORDER BY created DESC"},
	{[]string{"bugs", "show bugs", "list bugs", "issues"}, "project = %s AND issuetype = Bug ORDER BY created DESC"},
	{[]string{"tasks", "show tasks", "list tasks"}, "project = %s AND issuetype = Task ORDER BY created DESC"},
	{[]string{"recent", "latest"}, "project = %s ORDER BY created DESC"},
	{[]string{"open", "active"}, "project = %s AND status not in (Closed, Resolved) ORDER BY created DESC"},
	{[]string{"closed", "resolved"}, "project = %s AND status in (Closed, Resolved) ORDER BY created DESC"},
	{[]string{"blocked"}, "project = %s AND status = Blocked ORDER BY created DESC"},
	{[]string{"blocker"}, "project = %s AND priority = Highest ORDER BY created DESC"},
}

// Translate converts a natural-language query into a JQL expression
// scoped to the given project. Unrecognized queries fall back to a
// summary/description text search over the words longer than two
// characters; queries with no such words list the whole project.
func Translate(query, project string) string {
	lower := strings.ToLower(query)

	for _, rule := range jqlRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return fmt.Sprintf(rule.template, project)
			}
		}
	}

	var terms []string
	for _, word := range strings.Fields(query) {
		if len(word) > 2 {
			terms = append(terms, fmt.Sprintf("%q", word))
		}
	}
	if len(terms) == 0 {
		return fmt.Sprintf("project = %s ORDER BY created DESC", project)
	}
	search := strings.Join(terms, " ")
	return fmt.Sprintf(`project = %s AND (summary ~ "%s" OR description ~ "%s") ORDER BY created DESC`, project, search, search)
}
