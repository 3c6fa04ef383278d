// Package users holds the account entity and its persistence contracts.
package users

import "time"

// User is the account record tracked by the authentication service.
//
// The lockout bookkeeping is deliberately encapsulated: all fields are
// unexported and every state change goes through the methods below. The only
// way to ask "is this account blocked right now?" is IsStillBlocked, which
// also lifts expired blocks — callers must never branch on the raw flag.
type User struct {
	id           string
	email        string
	passwordHash string

	loginAttempts int
	blocked       bool
	blockedUntil  *time.Time

	createdAt time.Time
}

// New creates a fresh, unblocked user with a zero attempt counter.
func New(id, email, passwordHash string) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    time.Now(),
	}
}

// Restore rehydrates a persisted record. Repositories use it when scanning
// rows; it applies no transition rules of its own.
func Restore(id, email, passwordHash string, loginAttempts int, blocked bool, blockedUntil *time.Time, createdAt time.Time) *User {
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		loginAttempts: loginAttempts,
		blocked:       blocked,
		blockedUntil:  blockedUntil,
		createdAt:     createdAt,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) LoginAttempts() int   { return u.loginAttempts }
func (u *User) Blocked() bool        { return u.blocked }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// BlockedUntil returns the block deadline, or nil when the account is not
// blocked. Informational only (persistence, user-facing messages); the block
// decision itself belongs to IsStillBlocked.
func (u *User) BlockedUntil() *time.Time { return u.blockedUntil }

// IncrementLoginAttempts records one more failed login. No upper bound is
// enforced here; the caller decides when the count crosses the threshold.
func (u *User) IncrementLoginAttempts() {
	u.loginAttempts++
}

// Block puts the account into the blocked state until now+d. The attempt
// counter is left as is.
func (u *User) Block(d time.Duration) {
	until := time.Now().Add(d)
	u.blocked = true
	u.blockedUntil = &until
}

// Unblock returns the account to the active state: the deadline is cleared
// and the attempt counter resets to zero.
func (u *User) Unblock() {
	u.blocked = false
	u.blockedUntil = nil
	u.loginAttempts = 0
}

// IsStillBlocked reports whether the account is currently blocked. A block
// whose deadline has passed (or was never set) is lifted here, as a side
// effect: expiry is evaluated lazily at query time, never by a background
// sweep.
func (u *User) IsStillBlocked() bool {
	if !u.blocked {
		return false
	}
	if u.blockedUntil != nil && u.blockedUntil.After(time.Now()) {
		return true
	}
	u.Unblock()
	return false
}

// UpdatePassword replaces the stored credential hash. Lock and attempt state
// are untouched.
func (u *User) UpdatePassword(newHash string) {
	u.passwordHash = newHash
}
