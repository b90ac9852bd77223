package incidents

import "github.com/bissquit/incident-console/internal/domain"

// Service answers incident queries over the seeded dataset. Every call is
// a pure function of (query, seed); there is no cross-request state.
type Service struct {
	seed []domain.Incident
}

// NewService creates an incident service over the given dataset.
func NewService(seed []domain.Incident) *Service {
	return &Service{seed: seed}
}

// List returns the full incident dataset.
func (s *Service) List() []domain.Incident {
	return copyAll(s.seed)
}

// Query classifies the free-text query and returns the matching view.
func (s *Service) Query(query string) []domain.Incident {
	return Classify(query, s.seed).Incidents
}

// Reply renders the chat-style answer for the query.
func (s *Service) Reply(query string) string {
	return Reply(query, s.seed)
}
