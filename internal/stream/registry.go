package stream

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// SessionSummary is the diagnostic view of one live session. It carries no
// notification content.
type SessionSummary struct {
	SessionID   string    `json:"session_id"`
	RecipientID string    `json:"recipient_id"`
	State       string    `json:"state"`
	OpenedAt    time.Time `json:"opened_at"`
	LastPollAt  time.Time `json:"last_poll_at"`
}

// Registry tracks the sessions currently alive in this process. It exists
// for operational visibility only: nothing may push a notification through
// it — sessions learn about new rows exclusively by polling the store.
type Registry interface {
	Register(session *Session)
	Unregister(sessionID string)
	List() []SessionSummary
}

type memoryRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty in-process registry.
func NewRegistry() Registry {
	return &memoryRegistry{
		sessions: make(map[string]*Session),
	}
}

func (r *memoryRegistry) Register(session *Session) {
	r.mu.Lock()
	r.sessions[session.ID()] = session
	total := len(r.sessions)
	r.mu.Unlock()

	log.Info().Str("session_id", session.ID()).Str("recipient_id", session.RecipientID()).
		Int("total_sessions", total).Msg("stream session registered")
}

func (r *memoryRegistry) Unregister(sessionID string) {
	r.mu.Lock()
	delete(r.sessions, sessionID)
	total := len(r.sessions)
	r.mu.Unlock()

	log.Info().Str("session_id", sessionID).Int("total_sessions", total).Msg("stream session unregistered")
}

func (r *memoryRegistry) List() []SessionSummary {
	r.mu.Lock()
	summaries := make([]SessionSummary, 0, len(r.sessions))
	for _, session := range r.sessions {
		summaries = append(summaries, session.Summary())
	}
	r.mu.Unlock()

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].OpenedAt.Before(summaries[j].OpenedAt)
	})
	return summaries
}
