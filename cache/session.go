package cache

import (
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/trueform/compiler/evaluator"
	"github.com/trueform/compiler/ir"
)

// Session is one incremental build's accumulated state: the last full
// Result, for build.PartialBuild to diff against and reuse unaffected
// selections from, plus the per-feature input hash recorded alongside
// it so a later partial build can detect a feature whose resolved
// inputs changed even though the caller never listed it as edited.
type Session struct {
	ID          string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Result      *evaluator.Result
	InputHashes map[string]uint64
}

// SessionStore is a TTL- and quota-bounded registry of build sessions.
// Callers pass `now` explicitly rather than the store calling
// time.Now() itself, so expiry and quota behavior is exercisable
// deterministically in tests.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	maxCount int
	sessions map[string]*Session
}

// NewSessionStore builds a store evicting sessions ttl after creation
// or after their last Update, and refusing new sessions once maxCount live sessions exist. A
// non-positive maxCount means unbounded.
func NewSessionStore(ttl time.Duration, maxCount int) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		maxCount: maxCount,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session as of now, returning ir.CodeQuotaExceeded
// if the store is already at capacity once expired sessions are swept.
func (s *SessionStore) Create(now time.Time) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)
	if s.maxCount > 0 && len(s.sessions) >= s.maxCount {
		return nil, ir.NewError(ir.CodeQuotaExceeded, "build session quota exceeded")
	}
	sess := &Session{
		ID:        xid.New().String(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

// Get returns the live session for id as of now, or
// ir.CodeBuildSessionNotFound if it never existed or has expired.
func (s *SessionStore) Get(id string, now time.Time) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || now.After(sess.ExpiresAt) {
		return nil, ir.NewError(ir.CodeBuildSessionNotFound, "build session not found or expired", "referenceId", id)
	}
	return sess, nil
}

// Update replaces the stored Result and per-feature input hashes for id
// and extends its expiry from now, or returns
// ir.CodeBuildSessionNotFound as Get does.
func (s *SessionStore) Update(id string, result *evaluator.Result, inputHashes map[string]uint64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || now.After(sess.ExpiresAt) {
		return ir.NewError(ir.CodeBuildSessionNotFound, "build session not found or expired", "referenceId", id)
	}
	sess.Result = result
	sess.InputHashes = inputHashes
	sess.ExpiresAt = now.Add(s.ttl)
	return nil
}

// Len reports the number of sessions currently tracked, expired or not
// (a caller wanting a live count should Sweep first).
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes every session expired as of now and reports how many
// were removed.
func (s *SessionStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(now)
}

func (s *SessionStore) sweepLocked(now time.Time) int {
	removed := 0
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
