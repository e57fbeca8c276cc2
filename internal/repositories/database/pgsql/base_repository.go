package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// The pool is constructed once at process start and injected; no repository
// holds ambient global state.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
