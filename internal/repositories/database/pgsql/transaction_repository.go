package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	"github.com/trackspend/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/trackspend/expense_tracker_app/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a transaction repository backed by the given pool.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = "transaction_id, user_id, type, category, title, amount, occurred_at, created_at, updated_at"

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var txnType string
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txnType,
		&txn.Category,
		&txn.Title,
		&txn.Amount,
		&txn.OccurredAt,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	txn.Type = domain.TransactionType(txnType)
	return &txn, nil
}

// filterConditions appends WHERE fragments and their arguments for the
// optional filter fields. Date bounds are inclusive on both ends.
func filterConditions(conds []string, args []any, filter domain.TransactionFilter) ([]string, []any) {
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conds = append(conds, fmt.Sprintf("occurred_at >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conds = append(conds, fmt.Sprintf("occurred_at <= $%d", len(args)))
	}
	return conds, args
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, category, title, amount, occurred_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		string(txn.Type),
		txn.Category,
		txn.Title,
		txn.Amount,
		txn.OccurredAt,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID, userID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	args := []any{userID}
	conds := []string{"user_id = $1"}
	conds, args = filterConditions(conds, args, filter)

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE %s
		ORDER BY occurred_at DESC, created_at DESC
		LIMIT $%d OFFSET $%d;
	`, transactionColumns, strings.Join(conds, " AND "), limitPos, offsetPos)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return txns, nil
}

func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) (int64, error) {
	args := []any{userID}
	conds := []string{"user_id = $1"}
	conds, args = filterConditions(conds, args, filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM transactions WHERE %s;`, strings.Join(conds, " AND "))

	var total int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID, userID string, patch domain.TransactionPatch, updatedAt time.Time) (*domain.Transaction, error) {
	// COALESCE keeps the stored value whenever the patch field is nil.
	query := `
		UPDATE transactions
		SET type        = COALESCE($3, type),
		    category    = COALESCE($4, category),
		    title       = COALESCE($5, title),
		    amount      = COALESCE($6, amount),
		    occurred_at = COALESCE($7, occurred_at),
		    updated_at  = $8
		WHERE transaction_id = $1 AND user_id = $2
		RETURNING ` + transactionColumns + `;
	`
	var txnType *string
	if patch.Type != nil {
		s := string(*patch.Type)
		txnType = &s
	}

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query,
		transactionID,
		userID,
		txnType,
		patch.Category,
		patch.Title,
		patch.Amount,
		patch.OccurredAt,
		updatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) SumAmountsByType(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, decimal.Decimal, error) {
	args := []any{userID}
	conds := []string{"user_id = $1"}
	conds, args = filterConditions(conds, args, filter)

	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE %s;
	`, strings.Join(conds, " AND "))

	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}
	return income, expense, nil
}

func (r *PgxTransactionRepository) MonthlyTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT
			EXTRACT(MONTH FROM occurred_at AT TIME ZONE 'UTC')::int AS month,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
		GROUP BY 1
		ORDER BY 1;
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.MonthlyTotal{}
	for rows.Next() {
		var t domain.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Income, &t.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", rows.Err())
	}

	return totals, nil
}
