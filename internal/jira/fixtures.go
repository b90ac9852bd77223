package jira

import (
	"time"

	"github.com/bissquit/incident-console/internal/domain"
)

// Fixtures returns the seeded issue list served when no Jira instance is
// configured. Timestamps are generated at call time so the issues always
// look fresh in the console.
func Fixtures() []domain.JiraIssue {
	now := time.Now().UTC().Format(time.RFC3339)
	return []domain.JiraIssue{
		{
			Key: "KAN-4",
			Fields: domain.JiraFields{
				Summary:  "High CPU usage in production environment",
				Status:   domain.JiraStatus{Name: "In Progress"},
				Priority: domain.JiraPriority{Name: "High"},
				Assignee: &domain.JiraAssignee{DisplayName: "pavani Racham", EmailAddress: "m24de3059@iitj.ac.in"},
				Created:  now,
				Updated:  now,
			},
		},
		{
			Key: "KAN-5",
			Fields: domain.JiraFields{
				Summary:  "Memory leak in worker nodes",
				Status:   domain.JiraStatus{Name: "Open"},
				Priority: domain.JiraPriority{Name: "Medium"},
				Assignee: &domain.JiraAssignee{DisplayName: "pavani Racham", EmailAddress: "m24de3059@iitj.ac.in"},
				Created:  now,
				Updated:  now,
			},
		},
		{
			Key: "KAN-3",
			Fields: domain.JiraFields{
				Summary:  "Database connection timeout",
				Status:   domain.JiraStatus{Name: "Done"},
				Priority: domain.JiraPriority{Name: "Low"},
				Assignee: &domain.JiraAssignee{DisplayName: "naresh vemuri", EmailAddress: "m24de3052@iitj.ac.in"},
				Created:  now,
				Updated:  now,
			},
		},
		{
			Key: "KAN-1",
			Fields: domain.JiraFields{
				Summary:  "Database connection timeout",
				Status:   domain.JiraStatus{Name: "Done"},
				Priority: domain.JiraPriority{Name: "Low"},
				Created:  now,
				Updated:  now,
			},
		},
	}
}
