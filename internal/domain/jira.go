package domain

// JiraStatus is the status block of a Jira issue.
type JiraStatus struct {
	Name string `json:"name"`
}

// JiraPriority is the priority block of a Jira issue.
type JiraPriority struct {
	Name string `json:"name"`
}

// JiraAssignee is the assignee block of a Jira issue. Nil when unassigned.
type JiraAssignee struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// JiraFields mirrors the field layout of the Jira REST API so responses
// can be decoded and re-served without reshaping.
type JiraFields struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Status      JiraStatus    `json:"status"`
	Priority    JiraPriority  `json:"priority"`
	Assignee    *JiraAssignee `json:"assignee,omitempty"`
	Created     string        `json:"created"`
	Updated     string        `json:"updated,omitempty"`
}

// JiraIssue is a Jira issue keyed by its human-readable issue key.
// Issues are immutable once constructed; updates produce new values and
// never mutate the fixture store.
type JiraIssue struct {
	Key    string     `json:"key"`
	Fields JiraFields `json:"fields"`
}

// AssigneeName returns the assignee display name or "Unassigned".
func (i JiraIssue) AssigneeName() string {
	if i.Fields.Assignee == nil {
		return "Unassigned"
	}
	return i.Fields.Assignee.DisplayName
}
