package memory

import (
	"sync"
	"testing"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/advisor/state"
)

func TestSessionRepository_CommitThenAcquire(t *testing.T) {
	repo := NewSessionRepository()

	s, release := repo.Acquire("u1")
	s.SlotMemory = intent.SlotSet{Color: "blue"}
	repo.Commit(s)
	release()

	got, release := repo.Acquire("u1")
	defer release()
	if got.SlotMemory.Color != "blue" {
		t.Errorf("SlotMemory.Color = %q, want blue", got.SlotMemory.Color)
	}
}

func TestSessionRepository_UncommittedMutationsAreDiscarded(t *testing.T) {
	repo := NewSessionRepository()

	s, release := repo.Acquire("u1")
	s.SlotMemory = intent.SlotSet{Color: "blue"}
	repo.Commit(s)
	release()

	s, release = repo.Acquire("u1")
	s.SlotMemory = intent.SlotSet{Color: "red"}
	release() // no commit

	got, release := repo.Acquire("u1")
	defer release()
	if got.SlotMemory.Color != "blue" {
		t.Errorf("SlotMemory.Color = %q, uncommitted mutation leaked", got.SlotMemory.Color)
	}
}

func TestSessionRepository_Reset(t *testing.T) {
	repo := NewSessionRepository()

	s, release := repo.Acquire("u1")
	s.Pending = &state.PendingAction{Kind: state.PendingSuggestAlternativeColors}
	repo.Commit(s)
	release()

	repo.Reset("u1")

	got, release := repo.Acquire("u1")
	defer release()
	if got.Pending != nil {
		t.Error("expected a fresh session after Reset")
	}
}

func TestSessionRepository_SerializesSameKey(t *testing.T) {
	repo := NewSessionRepository()
	const turns = 50

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, release := repo.Acquire("u1")
			s.AppendTurn("user", "hi")
			s.SlotMemory = intent.SlotSet{Color: "blue"}
			repo.Commit(s)
			release()
		}()
	}
	wg.Wait()

	got, release := repo.Acquire("u1")
	defer release()
	// Window is bounded, so the only guarantee is consistency, not count.
	if len(got.RecentTurns) == 0 || got.SlotMemory.Color != "blue" {
		t.Errorf("session corrupted under concurrency: %+v", got)
	}
}
