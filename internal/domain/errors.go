package domain

import "errors"

var (
	// ErrIssueNotFound is returned when an issue key does not exist.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrNotConfigured is returned when an upstream integration is used
	// without the credentials it needs.
	ErrNotConfigured = errors.New("integration not configured")
)
