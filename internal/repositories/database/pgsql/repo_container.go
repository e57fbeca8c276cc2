package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/trackspend/expense_tracker_app/internal/core/ports/repositories"
)

// RepositoryContainer bundles all pgsql-backed repositories.
type RepositoryContainer struct {
	Transaction portsrepo.TransactionRepository
	User        portsrepo.UserRepository
}

// NewRepositoryContainer wires every repository onto the shared pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		Transaction: NewTransactionRepository(pool),
		User:        NewUserRepository(pool),
	}
}
