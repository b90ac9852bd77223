package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/bissquit/incident-console/internal/mcp"
	"github.com/bissquit/incident-console/internal/pkg/metrics"
)

// JiraSearcher resolves a natural-language query to Jira issues.
type JiraSearcher interface {
	Search(ctx context.Context, query string) ([]domain.JiraIssue, error)
}

// CommitLister lists commits from the configured repository.
type CommitLister interface {
	ListCommits(ctx context.Context) ([]domain.Commit, error)
}

// ClusterQuerier answers free-text cluster queries.
type ClusterQuerier interface {
	ProcessQuery(ctx context.Context, query string) string
}

// Dispatcher routes a chat message to a domain by keyword marker and
// renders the domain's answer as a text reply. Marker priority is
// fixed: JIRA, then GitHub, then OpenShift, then MCP; anything else
// gets the help reply. Domain errors never escape as errors, they
// become apologetic assistant messages.
type Dispatcher struct {
	jira      JiraSearcher
	github    CommitLister
	openshift ClusterQuerier
	logger    *slog.Logger
}

// NewDispatcher creates a message dispatcher.
func NewDispatcher(jira JiraSearcher, github CommitLister, openshift ClusterQuerier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		jira:      jira,
		github:    github,
		openshift: openshift,
		logger:    logger,
	}
}

// Dispatch resolves one user message to the assistant's reply.
func (d *Dispatcher) Dispatch(ctx context.Context, message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "jira", "ticket", "issue"):
		metrics.RecordAssistantDispatch("jira")
		return d.replyJira(ctx, message)
	case containsAny(lower, "github", "commit", "pr"):
		metrics.RecordAssistantDispatch("github")
		return d.replyGitHub(ctx)
	case containsAny(lower, "openshift", "cluster", "pod", "deployment"):
		metrics.RecordAssistantDispatch("openshift")
		return d.openshift.ProcessQuery(ctx, message)
	case containsAny(lower, "mcp", "model", "protocol"):
		metrics.RecordAssistantDispatch("mcp")
		return replyMCP(lower)
	default:
		metrics.RecordAssistantDispatch("help")
		return helpReply(message)
	}
}

func (d *Dispatcher) replyJira(ctx context.Context, message string) string {
	issues, err := d.jira.Search(ctx, message)
	if err != nil {
		d.logger.Error("assistant jira search failed", "error", err)
		return "Sorry, I encountered an error while searching JIRA issues. Please try again."
	}

	blocks := make([]string, 0, len(issues))
	for _, issue := range issues {
		blocks = append(blocks, fmt.Sprintf("🎫 %s: %s\nStatus: %s\nPriority: %s\nAssignee: %s",
			issue.Key,
			issue.Fields.Summary,
			issue.Fields.Status.Name,
			issue.Fields.Priority.Name,
			issue.AssigneeName()))
	}
	return "I found these JIRA issues:\n\n" + strings.Join(blocks, "\n\n")
}

func (d *Dispatcher) replyGitHub(ctx context.Context) string {
	commits, err := d.github.ListCommits(ctx)
	if err != nil {
		d.logger.Error("assistant github search failed", "error", err)
		return "Sorry, I encountered an error while searching GitHub. Please try again."
	}

	lines := make([]string, 0, len(commits))
	for _, commit := range commits {
		lines = append(lines, fmt.Sprintf("📝 %s - %s (by %s)",
			commitDate(commit.Commit.Author.Date),
			commit.Commit.Message,
			commit.Commit.Author.Name))
	}
	return "Here are the GitHub search results:\n\n" + strings.Join(lines, "\n\n")
}

// replyMCP renders the chat rendition of the MCP domain. The chat box
// answers a narrower set of markers than the MCP modal and always in
// prose form.
func replyMCP(lower string) string {
	if strings.Contains(lower, "system.metrics") || strings.Contains(lower, "resource.utilization") {
		result := mcp.Process(lower)
		m := result.Metrics
		return fmt.Sprintf("📊 System Metrics:\n\n"+
			"CPU:\n"+
			"• Usage: %s\n"+
			"• Cores: %d\n"+
			"• Temperature: %s\n\n"+
			"Memory:\n"+
			"• Used: %s\n"+
			"• Available: %s",
			m.CPU.Usage, m.CPU.Cores, m.CPU.Temperature,
			m.Memory.Used, m.Memory.Available)
	}

	if strings.Contains(lower, "model.status") || strings.Contains(lower, "model.health") {
		return fmt.Sprintf("🤖 Model Status:\n\n"+
			"• Status: Active\n"+
			"• Health: 98%%\n"+
			"• Last Update: %s\n"+
			"• Active Sessions: 12\n"+
			"• Queue Length: 3",
			time.Now().Format("2006-01-02 15:04:05"))
	}

	return "🎯 Model Context Protocol Overview:\n\n" +
		"1. System Status: Operational\n" +
		"2. Active Models: 4\n" +
		"3. Total Sessions: 15\n" +
		"4. Average Response Time: 245ms"
}

func helpReply(message string) string {
	return "I understand you're asking about: " + message + "\n\n" +
		"Tip: You can ask about:\n" +
		"• JIRA (tickets, issues)\n" +
		"• GitHub (commits, PRs)\n" +
		"• OpenShift (pods, deployments)\n" +
		"• Model Context Protocol (MCP)"
}

// commitDate trims a commit timestamp to its date part, tolerating
// non-RFC3339 values by passing them through.
func commitDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

func containsAny(s string, markers ...string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
