package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/calidadsoft/loginbackend/internal/common"
	"github.com/calidadsoft/loginbackend/internal/logging"
	"github.com/calidadsoft/loginbackend/internal/server/config"
	"github.com/calidadsoft/loginbackend/internal/server/passwords"
	"github.com/calidadsoft/loginbackend/internal/server/users"
)

// User-facing messages. Login never distinguishes an unknown email from a
// wrong password: both paths return MsgInvalidCredentials verbatim, so a
// caller cannot probe which accounts exist. The lockout messages do reveal
// lock state for an existing email; that trade is deliberate.
const (
	MsgInvalidEmailFormat = "invalid email format"
	MsgLoginRequired      = "email and password are required"
	MsgInvalidCredentials = "invalid credentials"
	MsgLoginSuccess       = "login successful"

	MsgResetRequired     = "email, token and password are required"
	MsgInvalidEmail      = "invalid email"
	MsgUserNotFound      = "user not found"
	MsgInvalidResetToken = "invalid or expired reset token"
	MsgPasswordUpdated   = "password updated"
)

// LoginResult is the outcome of one login attempt. Expected business
// failures (bad credentials, blocked account, malformed input) are reported
// here, never as errors.
type LoginResult struct {
	Success bool
	Token   string
	Message string
}

// ResetResult is the outcome of one password-reset attempt.
type ResetResult struct {
	Success bool
	Message string
}

type Service struct {
	repo        users.Repository
	tokens      TokenIssuer
	hasher      PasswordHasher
	resetTokens ResetTokenValidator
	logger      logging.Logger

	maxAttempts   int
	blockDuration time.Duration
}

func NewService(repo users.Repository, tokens TokenIssuer, hasher PasswordHasher, resetTokens ResetTokenValidator, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		repo:          repo,
		tokens:        tokens,
		hasher:        hasher,
		resetTokens:   resetTokens,
		logger:        logger.With("module", "auth"),
		maxAttempts:   cfg.MaxLoginAttempts,
		blockDuration: cfg.BlockDuration,
	}
}

// Login runs the credential check and lockout bookkeeping for one attempt.
// The error return is reserved for store and token-issuance failures; every
// expected outcome is a LoginResult.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	if strings.TrimSpace(email) != "" && !strings.Contains(email, "@") {
		return &LoginResult{Message: MsgInvalidEmailFormat}, nil
	}

	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return &LoginResult{Message: MsgLoginRequired}, nil
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// do not reveal whether the account exists
			return &LoginResult{Message: MsgInvalidCredentials}, nil
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	// Attempt/lock state as fetched, before the lazy expiry check below may
	// clear it. The success path uses these to decide whether a write is due.
	hadAttempts := user.LoginAttempts() > 0
	wasBlocked := user.Blocked()

	if user.IsStillBlocked() {
		s.logger.Info(ctx, "login rejected, account blocked", "email", email)
		return &LoginResult{
			Message: fmt.Sprintf("account locked until %s", user.BlockedUntil().Format(time.RFC3339)),
		}, nil
	}

	if !s.hasher.Compare(user.PasswordHash(), password) {
		user.IncrementLoginAttempts()

		if user.LoginAttempts() >= s.maxAttempts {
			user.Block(s.blockDuration)
			s.logger.Warn(ctx, "account blocked after repeated failures",
				"email", email, "attempts", user.LoginAttempts())
		}

		// one write covers both the counter and a possible new block
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("persisting failed attempt: %w", err)
		}

		if user.Blocked() {
			return &LoginResult{
				Message: fmt.Sprintf("account locked for %d minutes", int(s.blockDuration.Minutes())),
			}, nil
		}
		return &LoginResult{Message: MsgInvalidCredentials}, nil
	}

	if hadAttempts || wasBlocked {
		user.Unblock()
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("resetting attempts: %w", err)
		}
	}

	token, err := s.tokens.Issue(user.ID())
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info(ctx, "login successful", "email", email)
	return &LoginResult{Success: true, Token: token, Message: MsgLoginSuccess}, nil
}

// ResetPassword replaces a user's credential after an out-of-band token
// check. A blocked account is unblocked by a successful reset.
func (s *Service) ResetPassword(ctx context.Context, email, token, newPassword string) (*ResetResult, error) {

	if strings.TrimSpace(email) == "" || strings.TrimSpace(token) == "" || strings.TrimSpace(newPassword) == "" {
		return &ResetResult{Message: MsgResetRequired}, nil
	}

	if !strings.Contains(email, "@") {
		return &ResetResult{Message: MsgInvalidEmail}, nil
	}

	if ok, msg := passwords.Validate(newPassword); !ok {
		return &ResetResult{Message: msg}, nil
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &ResetResult{Message: MsgUserNotFound}, nil
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	if err := s.resetTokens.Validate(ctx, email, token); err != nil {
		s.logger.Warn(ctx, "reset token rejected", "email", email)
		return &ResetResult{Message: MsgInvalidResetToken}, nil
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user.UpdatePassword(hash)
	if user.Blocked() {
		user.Unblock()
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("persisting password: %w", err)
	}

	s.logger.Info(ctx, "password reset", "email", email)
	return &ResetResult{Success: true, Message: MsgPasswordUpdated}, nil
}
