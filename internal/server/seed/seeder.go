// Package seed provisions the initial admin account on a fresh database.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/calidadsoft/loginbackend/internal/dbx"
	"github.com/calidadsoft/loginbackend/internal/logging"
	"github.com/calidadsoft/loginbackend/internal/server/auth"
	"github.com/calidadsoft/loginbackend/internal/server/users"
	"github.com/google/uuid"
)

type Seeder struct {
	db     *sql.DB
	hasher auth.PasswordHasher
	logger logging.Logger
}

func New(db *sql.DB, hasher auth.PasswordHasher, logger logging.Logger) *Seeder {
	return &Seeder{db: db, hasher: hasher, logger: logger.With("module", "seed")}
}

// EnsureAdmin creates the configured admin account unless a user with that
// email already exists. The existence check and the insert run in one
// transaction, so concurrent server starts cannot double-seed.
func (s *Seeder) EnsureAdmin(ctx context.Context, email, password string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewPostgresRepository(tx)

		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("seed existence check: %w", err)
		}
		if exists {
			return nil
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("seed password hash: %w", err)
		}

		if err := repo.Create(ctx, users.New(uuid.NewString(), email, hash)); err != nil {
			return fmt.Errorf("seed insert: %w", err)
		}

		s.logger.Info(ctx, "seeded admin user", "email", email)
		return nil
	})
}
