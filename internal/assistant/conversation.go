// Package assistant implements the console's chat box: a keyword
// dispatcher that routes free-text messages to the JIRA, GitHub,
// OpenShift or MCP domain and appends both sides of the exchange to an
// in-memory conversation log.
package assistant

import (
	"sync"
	"time"

	"github.com/bissquit/incident-console/internal/domain"
	"github.com/google/uuid"
)

// ConversationLog is the append-only in-memory message history. Appends
// from concurrent requests interleave in lock order; there is no
// ordering guarantee between racing exchanges beyond that.
type ConversationLog struct {
	mu       sync.Mutex
	messages []domain.Message
}

// NewConversationLog creates an empty conversation log.
func NewConversationLog() *ConversationLog {
	return &ConversationLog{}
}

// Append adds a message to the log and returns it.
func (l *ConversationLog) Append(role domain.MessageRole, content string) domain.Message {
	msg := domain.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
	return msg
}

// Messages returns a copy of the log in append order.
func (l *ConversationLog) Messages() []domain.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Message, len(l.messages))
	copy(out, l.messages)
	return out
}
