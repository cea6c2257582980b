package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"paint-advisor-be/pkg/advisor/state"
)

// SessionRepository is the in-process advisor session store. Sessions live
// in a TTL cache so an abandoned conversation evicts itself; the per-key
// mutexes serialize turns on the same session while letting different users
// proceed in parallel.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *SessionRepository) keyLock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

// Acquire blocks until the key's previous turn released, then returns a
// private clone of the stored session.
func (r *SessionRepository) Acquire(key string) (*state.Session, func()) {
	l := r.keyLock(key)
	l.Lock()

	if x, found := r.cache.Get(key); found {
		return x.(*state.Session).Clone(), l.Unlock
	}
	return state.NewSession(key), l.Unlock
}

// Commit stores the clone back, refreshing the TTL.
func (r *SessionRepository) Commit(session *state.Session) {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.Key, session, cache.DefaultExpiration)
}

// Reset drops the session. Callers not holding the key's acquisition race
// harmlessly; the next Acquire simply starts fresh.
func (r *SessionRepository) Reset(key string) {
	r.cache.Delete(key)
}
