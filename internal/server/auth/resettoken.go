package auth

import "context"

// ResetTokenValidator checks the out-of-band token presented with a
// password-reset request. A non-nil error rejects the reset.
type ResetTokenValidator interface {
	Validate(ctx context.Context, email, token string) error
}

// AcceptAnyToken accepts every token that reaches it (emptiness is already
// rejected upstream). It stands in until reset tokens are stored and checked
// for real; a stored-token validator slots in behind the interface without
// changing the reset control flow.
//
// TODO: replace with a stored-token lookup once reset tokens are persisted.
type AcceptAnyToken struct{}

func (AcceptAnyToken) Validate(ctx context.Context, email, token string) error {
	return nil
}
