// Package session holds the per-client authentication state and the
// brute-force lockout state machine.
package session

import "time"

// Session is the mutable state of one interactive client: the currently
// authenticated username (empty when unauthenticated), the failed-login
// counter and the lockout deadline. It is owned by the caller, never
// persisted, and reset by creating a new Session.
type Session struct {
	AuthenticatedUser string
	FailedAttempts    int
	LockedUntil       time.Time

	// now is a clock seam for tests.
	now func() time.Time
}

// New returns an unlocked, unauthenticated session.
func New() *Session {
	return &Session{now: time.Now}
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.AuthenticatedUser != ""
}

// Locked reports whether login attempts are currently rejected outright.
func (s *Session) Locked() bool {
	return s.now().Before(s.LockedUntil)
}

// LockRemaining returns how long the current lockout still lasts, or zero
// when the session is not locked.
func (s *Session) LockRemaining() time.Duration {
	if !s.Locked() {
		return 0
	}
	return s.LockedUntil.Sub(s.now())
}

// RecordFailure advances the failure counter and, once it reaches
// maxAttempts, starts a lockout of lockFor. It returns true when this
// particular failure tripped the lock.
//
// The counter is reset only by RecordSuccess. It survives lockout expiry,
// so a single further failure after an expired lockout re-locks the
// session immediately.
func (s *Session) RecordFailure(maxAttempts int, lockFor time.Duration) bool {
	s.FailedAttempts++
	if s.FailedAttempts >= maxAttempts {
		s.LockedUntil = s.now().Add(lockFor)
		return true
	}
	return false
}

// RecordSuccess marks the session authenticated as username and resets
// the failure counter.
func (s *Session) RecordSuccess(username string) {
	s.AuthenticatedUser = username
	s.FailedAttempts = 0
}

// Clear drops the authenticated identity. Lockout state is kept.
func (s *Session) Clear() {
	s.AuthenticatedUser = ""
}
