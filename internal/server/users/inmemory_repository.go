package users

import (
	"context"
	"sync"
	"time"

	"github.com/calidadsoft/loginbackend/internal/common"
)

// InMemoryRepository keeps users in a map keyed by email. It copies entities
// on the way in and out, so callers observe the same fetch/persist round-trip
// behavior as with a real store. Used by tests and database-less local runs.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

func clone(u *User) *User {
	var until *time.Time
	if u.blockedUntil != nil {
		t := *u.blockedUntil
		until = &t
	}
	return Restore(u.id, u.email, u.passwordHash, u.loginAttempts, u.blocked, until, u.createdAt)
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email()]; ok {
		return common.ErrorAlreadyExists
	}
	r.users[user.Email()] = clone(user)
	return nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

func (r *InMemoryRepository) Update(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// email is immutable, so the map key still identifies the record
	if _, ok := r.users[user.Email()]; !ok {
		return common.ErrorNotFound
	}
	r.users[user.Email()] = clone(user)
	return nil
}

func (r *InMemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[email]
	return ok, nil
}
