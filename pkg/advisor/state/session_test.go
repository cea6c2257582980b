package state

import (
	"testing"

	"github.com/google/uuid"

	"paint-advisor-be/pkg/advisor/intent"
)

func TestSession_AppendTurnBounded(t *testing.T) {
	s := NewSession("u1")
	for i := 0; i < 10; i++ {
		s.AppendTurn("user", "message")
	}
	if len(s.RecentTurns) != recentTurnsWindow {
		t.Errorf("len(RecentTurns) = %d, want %d", len(s.RecentTurns), recentTurnsWindow)
	}
}

func TestSession_RememberRecommendedBoundedAndDeduped(t *testing.T) {
	s := NewSession("u1")
	a, b := uuid.New(), uuid.New()

	s.RememberRecommended([]uuid.UUID{a, b, a})
	if len(s.RecentlyRecommended) != 2 {
		t.Fatalf("len = %d, want 2 (duplicates must collapse)", len(s.RecentlyRecommended))
	}

	var more []uuid.UUID
	for i := 0; i < 6; i++ {
		more = append(more, uuid.New())
	}
	s.RememberRecommended(more)
	if len(s.RecentlyRecommended) != recentlyRecommendedWindow {
		t.Errorf("len = %d, want %d", len(s.RecentlyRecommended), recentlyRecommendedWindow)
	}
	if s.WasRecommended(a) {
		t.Error("oldest id should have been evicted")
	}
	if !s.WasRecommended(more[len(more)-1]) {
		t.Error("newest id should be retained")
	}
}

func TestSession_CloneIsDeep(t *testing.T) {
	s := NewSession("u1")
	s.AppendTurn("user", "hello")
	s.Pending = &PendingAction{
		Kind:           PendingSuggestAlternativeColors,
		RequestedColor: "purple",
		Alternatives:   []string{"blue", "pink"},
	}
	s.RememberRecommended([]uuid.UUID{uuid.New()})

	cp := s.Clone()
	cp.AppendTurn("user", "again")
	cp.Pending.Alternatives[0] = "green"
	cp.SlotMemory = intent.SlotSet{Color: "red"}

	if len(s.RecentTurns) != 1 {
		t.Errorf("original RecentTurns length changed: %d", len(s.RecentTurns))
	}
	if s.Pending.Alternatives[0] != "blue" {
		t.Errorf("original Pending mutated: %v", s.Pending.Alternatives)
	}
	if s.SlotMemory.Color != "" {
		t.Errorf("original SlotMemory mutated: %+v", s.SlotMemory)
	}
}

func TestClassifyReply(t *testing.T) {
	tests := []struct {
		utterance string
		want      Stance
	}{
		{"yes please", StanceAffirmative},
		{"sure, show me the blue one", StanceAffirmative},
		{"no thanks", StanceNegative},
		{"nah, something else", StanceNegative},
		{"no thanks, but sure looks nice", StanceNegative},
		{"I know what navy looks like", StanceUnclear},
		{"what about the kitchen", StanceUnclear},
		{"", StanceUnclear},
	}

	for _, tt := range tests {
		if got := ClassifyReply(tt.utterance); got != tt.want {
			t.Errorf("ClassifyReply(%q) = %v, want %v", tt.utterance, got, tt.want)
		}
	}
}
