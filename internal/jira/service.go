package jira

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bissquit/incident-console/internal/domain"
)

// issueAPI is the slice of the Jira client the service depends on.
type issueAPI interface {
	Search(ctx context.Context, jql string) ([]domain.JiraIssue, error)
	GetIssue(ctx context.Context, key string) (*domain.JiraIssue, error)
	CreateIssue(ctx context.Context, payload any) (*domain.JiraIssue, error)
	UpdateIssue(ctx context.Context, key string, payload any) (*domain.JiraIssue, error)
}

// Service answers issue-tracker queries. With a configured client it
// translates natural language to JQL and queries the live instance;
// without one it filters the fixture issue list.
type Service struct {
	client  issueAPI
	project string
	seed    []domain.JiraIssue
	logger  *slog.Logger
}

// NewService creates a Jira service. client may be nil for fixture-only
// operation.
func NewService(client issueAPI, project string, logger *slog.Logger) *Service {
	return &Service{
		client:  client,
		project: project,
		seed:    Fixtures(),
		logger:  logger,
	}
}

// Search resolves a natural-language query to a list of issues. Live
// errors propagate to the caller; this surface does not fall back to
// fixtures when an instance is configured.
func (s *Service) Search(ctx context.Context, query string) ([]domain.JiraIssue, error) {
	if s.client != nil {
		jql := Translate(query, s.project)
		s.logger.Debug("translated query to jql", "query", query, "jql", jql)
		return s.client.Search(ctx, jql)
	}
	return s.searchFixtures(query), nil
}

// GetIssue fetches one issue by key.
func (s *Service) GetIssue(ctx context.Context, key string) (*domain.JiraIssue, error) {
	if s.client != nil {
		return s.client.GetIssue(ctx, key)
	}
	for _, issue := range s.seed {
		if strings.EqualFold(issue.Key, key) {
			return &issue, nil
		}
	}
	return nil, domain.ErrIssueNotFound
}

// CreateIssue creates an issue. In fixture mode the issue is echoed back
// but never added to the seed list.
func (s *Service) CreateIssue(ctx context.Context, payload map[string]any) (*domain.JiraIssue, error) {
	if s.client != nil {
		return s.client.CreateIssue(ctx, payload)
	}
	return fixtureIssueFromPayload(s.project, payload), nil
}

// UpdateIssue updates an issue. In fixture mode the update is modeled
// but the seed list is left untouched.
func (s *Service) UpdateIssue(ctx context.Context, key string, payload map[string]any) (*domain.JiraIssue, error) {
	if s.client != nil {
		return s.client.UpdateIssue(ctx, key, payload)
	}
	issue, err := s.GetIssue(ctx, key)
	if err != nil {
		return nil, err
	}
	out := *issue
	if fields, ok := payload["fields"].(map[string]any); ok {
		if summary, ok := fields["summary"].(string); ok {
			out.Fields.Summary = summary
		}
	}
	return &out, nil
}

// searchFixtures mirrors the fixture filtering contract: broad "show me
// everything" phrasings return the whole list, anything else matches
// issue fields and a handful of status and priority keywords.
func (s *Service) searchFixtures(query string) []domain.JiraIssue {
	trimmed := strings.TrimSpace(query)
	lower := strings.ToLower(trimmed)

	if trimmed == "" || lower == "jira" || lower == "ticket" || lower == "issue" ||
		strings.Contains(lower, "show") || strings.Contains(lower, "find") || strings.Contains(lower, "get") {
		out := make([]domain.JiraIssue, len(s.seed))
		copy(out, s.seed)
		return out
	}

	matched := []domain.JiraIssue{}
	for _, issue := range s.seed {
		if fixtureMatches(issue, lower) {
			matched = append(matched, issue)
		}
	}
	return matched
}

func fixtureMatches(issue domain.JiraIssue, lower string) bool {
	status := strings.ToLower(issue.Fields.Status.Name)
	priority := strings.ToLower(issue.Fields.Priority.Name)

	if strings.Contains(strings.ToLower(issue.Fields.Summary), lower) ||
		strings.Contains(status, lower) ||
		strings.Contains(priority, lower) ||
		strings.Contains(strings.ToLower(issue.Key), lower) {
		return true
	}
	if issue.Fields.Assignee != nil &&
		strings.Contains(strings.ToLower(issue.Fields.Assignee.DisplayName), lower) {
		return true
	}

	switch {
	case strings.Contains(lower, "high") && strings.Contains(priority, "high"):
		return true
	case strings.Contains(lower, "open") && status == "open":
		return true
	case (strings.Contains(lower, "progress") || strings.Contains(lower, "ongoing")) && status == "in progress":
		return true
	case (strings.Contains(lower, "done") || strings.Contains(lower, "completed")) && status == "done":
		return true
	}
	return false
}

func fixtureIssueFromPayload(project string, payload map[string]any) *domain.JiraIssue {
	issue := &domain.JiraIssue{
		Key: project + "-0",
		Fields: domain.JiraFields{
			Status:   domain.JiraStatus{Name: "Open"},
			Priority: domain.JiraPriority{Name: "Medium"},
		},
	}
	if fields, ok := payload["fields"].(map[string]any); ok {
		if summary, ok := fields["summary"].(string); ok {
			issue.Fields.Summary = summary
		}
		if description, ok := fields["description"].(string); ok {
			issue.Fields.Description = description
		}
	}
	return issue
}
