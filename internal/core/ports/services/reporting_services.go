package services

import (
	"context"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

// ReportingSvcFacade computes derived views over a user's ledger.
// All operations are read-only and recomputed on demand; nothing is cached.
type ReportingSvcFacade interface {
	// DashboardStats aggregates the given calendar year: totals, the top
	// recentLimit records, and a dense 12-month income/expense series.
	DashboardStats(ctx context.Context, userID string, year, recentLimit int) (*domain.DashboardStats, error)

	// MonthlySeries returns just the dense 12-month series for a year.
	MonthlySeries(ctx context.Context, userID string, year int) ([]domain.MonthlyStat, error)

	// FinancialSummary computes totals over an arbitrary filtered slice,
	// with no time bucketing and no default year scope.
	FinancialSummary(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.FinancialSummary, error)
}
