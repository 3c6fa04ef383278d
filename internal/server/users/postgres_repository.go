package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/calidadsoft/loginbackend/internal/common"
	"github.com/calidadsoft/loginbackend/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) error {

	query :=
		`INSERT INTO users (id, email, password_hash, login_attempts, blocked, blocked_until, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID(), user.Email(), user.PasswordHash(),
		user.LoginAttempts(), user.Blocked(), user.BlockedUntil(), user.CreatedAt())

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, email, password_hash, login_attempts, blocked, blocked_until, created_at FROM users
		 WHERE email = $1
		 `

	var (
		id, mail, hash string
		attempts       int
		blocked        bool
		blockedUntil   sql.NullTime
		createdAt      sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&id, &mail, &hash, &attempts, &blocked, &blockedUntil, &createdAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	var until *time.Time
	if blockedUntil.Valid {
		t := blockedUntil.Time
		until = &t
	}

	return Restore(id, mail, hash, attempts, blocked, until, createdAt.Time), nil
}

// Update replaces the mutable columns of the row keyed by id. Full-row
// replace, last write wins.
func (r *PostgresRepository) Update(ctx context.Context, user *User) error {
	query :=
		`UPDATE users SET password_hash = $2, login_attempts = $3, blocked = $4, blocked_until = $5
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.ID(), user.PasswordHash(), user.LoginAttempts(), user.Blocked(), user.BlockedUntil())

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query :=
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
