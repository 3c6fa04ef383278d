// Package db wires the SQL connection, migrations and repositories together.
package db

import (
	"context"
	"database/sql"

	"github.com/calidadsoft/loginbackend/internal/server/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
