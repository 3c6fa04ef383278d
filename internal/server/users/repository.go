package users

import "context"

// Repository is the user store contract. Update has last-write-wins replace
// semantics: there is no optimistic-concurrency check, so two concurrent
// failed logins for one account can race on the attempt counter.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
