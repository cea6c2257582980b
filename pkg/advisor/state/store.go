package state

// Store owns sessions and serializes access per key. Acquire blocks until
// the key's previous holder releases, hands out a private clone, and the
// caller persists its mutations with Commit. Dropping the clone without
// committing leaves the stored session untouched, which is how a failed
// turn stays side-effect free.
type Store interface {
	// Acquire returns a mutable clone of the session for key (creating an
	// empty one if needed) plus a release function. The caller must call
	// release exactly once, after its Commit if any.
	Acquire(key string) (*Session, func())

	// Commit replaces the stored session with the given clone. Must only
	// be called while holding the key's acquisition.
	Commit(session *Session)

	// Reset discards the session for key.
	Reset(key string)
}
