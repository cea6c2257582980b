package state

import (
	"time"

	"github.com/google/uuid"

	"paint-advisor-be/pkg/advisor/intent"
)

const (
	// recentTurnsWindow bounds the transcript kept in session memory.
	recentTurnsWindow = 6
	// recentlyRecommendedWindow bounds the ids used for repetition avoidance.
	recentlyRecommendedWindow = 4
)

// PendingKind names a question the assistant asked and is waiting on.
type PendingKind string

const (
	// PendingSuggestAlternativeColors is set after the assistant offered
	// substitute colors for an unavailable one.
	PendingSuggestAlternativeColors PendingKind = "SUGGEST_ALTERNATIVE_COLORS"
)

// PendingAction is the dialogue state machine's single open question. The
// payload carries everything needed to resolve the question without
// re-running extraction.
type PendingAction struct {
	Kind           PendingKind
	RequestedColor string
	Alternatives   []string
	Slots          intent.SlotSet // slots at the moment the question was asked
}

// Session is one user's conversational state. It is a plain value owned by
// its Store; the engine copies it, mutates the copy during a turn, and
// commits only when the whole turn succeeded.
type Session struct {
	Key                 string
	SlotMemory          intent.SlotSet
	RecentTurns         []intent.Turn
	Pending             *PendingAction
	RecentlyRecommended []uuid.UUID
	UpdatedAt           time.Time
}

// NewSession returns an empty session for a key.
func NewSession(key string) *Session {
	return &Session{Key: key, UpdatedAt: time.Now()}
}

// Clone returns a deep copy safe to mutate without touching the stored
// session.
func (s *Session) Clone() *Session {
	cp := *s
	cp.RecentTurns = append([]intent.Turn(nil), s.RecentTurns...)
	cp.RecentlyRecommended = append([]uuid.UUID(nil), s.RecentlyRecommended...)
	if s.Pending != nil {
		pending := *s.Pending
		pending.Alternatives = append([]string(nil), s.Pending.Alternatives...)
		cp.Pending = &pending
	}
	return &cp
}

// AppendTurn records an utterance, evicting the oldest beyond the window.
func (s *Session) AppendTurn(role, text string) {
	s.RecentTurns = append(s.RecentTurns, intent.Turn{Role: role, Text: text})
	if len(s.RecentTurns) > recentTurnsWindow {
		s.RecentTurns = s.RecentTurns[len(s.RecentTurns)-recentTurnsWindow:]
	}
}

// RememberRecommended records product ids for repetition avoidance, newest
// last, bounded by the window.
func (s *Session) RememberRecommended(ids []uuid.UUID) {
	for _, id := range ids {
		if s.WasRecommended(id) {
			continue
		}
		s.RecentlyRecommended = append(s.RecentlyRecommended, id)
	}
	if len(s.RecentlyRecommended) > recentlyRecommendedWindow {
		s.RecentlyRecommended = s.RecentlyRecommended[len(s.RecentlyRecommended)-recentlyRecommendedWindow:]
	}
}

// WasRecommended reports whether an id is inside the repetition window.
func (s *Session) WasRecommended(id uuid.UUID) bool {
	for _, seen := range s.RecentlyRecommended {
		if seen == id {
			return true
		}
	}
	return false
}
