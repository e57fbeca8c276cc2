package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

// TransactionRepository defines persistence operations over the transaction ledger.
// Every read, update and delete is scoped by (transactionID, userID); an ID that
// belongs to another user behaves identically to a missing ID.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error)

	// FindTransactions returns the matching page sorted by occurred_at descending,
	// tie-broken by created_at descending.
	FindTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error)
	CountTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) (int64, error)

	// UpdateTransaction applies a partial update and returns the updated record.
	UpdateTransaction(ctx context.Context, transactionID, userID string, patch domain.TransactionPatch, updatedAt time.Time) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, userID string) error

	// SumAmountsByType computes income and expense totals over the filtered set
	// in a single store round trip.
	SumAmountsByType(ctx context.Context, userID string, filter domain.TransactionFilter) (income, expense decimal.Decimal, err error)

	// MonthlyTotals returns per-month income/expense sums within [from, to].
	// Months without records are omitted.
	MonthlyTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyTotal, error)
}
