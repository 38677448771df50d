// Package otp keeps pending verification codes in memory. The map is
// authoritative but ephemeral: codes are short-lived, so losing them on
// restart is acceptable.
package otp

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// Expiration is how long a stored code stays verifiable.
const Expiration = 10 * time.Minute

type entry struct {
	code      string
	expiresAt time.Time
}

type Store struct {
	mu    sync.Mutex
	now   func() time.Time
	ttl   time.Duration
	codes map[string]entry
}

func NewStore(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		now:   now,
		ttl:   ttl,
		codes: make(map[string]entry),
	}
}

// Generate returns a numeric code in [100000, 109000). The upper bound
// matches the shipped generator and is kept as-is.
func (s *Store) Generate() string {
	return strconv.Itoa(100000 + rand.Intn(9000))
}

// Set upserts the pending code for an identifier, replacing any earlier
// one.
func (s *Store) Set(id, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[id] = entry{code: code, expiresAt: s.now().Add(s.ttl)}
}

// Verify reports whether the code matches the pending entry and has not
// expired. A match consumes the entry; a mismatch or an expired code
// leaves it in place.
func (s *Store) Verify(id, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.codes[id]
	if ok && stored.code == code && s.now().Before(stored.expiresAt) {
		delete(s.codes, id)
		return true
	}
	return false
}

// Cleanup removes every expired entry.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, stored := range s.codes {
		if stored.expiresAt.Before(now) {
			delete(s.codes, id)
		}
	}
}

// RunCleanup invokes Cleanup on the given interval for the lifetime of
// the process. Run it on its own goroutine.
func (s *Store) RunCleanup(interval time.Duration) {
	for range time.Tick(interval) {
		s.Cleanup()
	}
}
