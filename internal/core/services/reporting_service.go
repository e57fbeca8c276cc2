package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/trackspend/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
)

// reportingService implements ReportingSvcFacade. Every view is recomputed on
// demand from the ledger; there is no cache to invalidate.
type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionRepository) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DashboardStats(ctx context.Context, userID string, year, recentLimit int) (*domain.DashboardStats, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	from, to := domain.YearRange(year)
	yearFilter := domain.TransactionFilter{StartDate: &from, EndDate: &to}

	income, expense, err := s.txnRepo.SumAmountsByType(ctx, userID, yearFilter)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum year totals", slog.Int("year", year))
		return nil, fmt.Errorf("failed to compute dashboard totals: %w", err)
	}

	recent, err := s.txnRepo.FindTransactions(ctx, userID, yearFilter, recentLimit, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch recent transactions", slog.Int("year", year))
		return nil, fmt.Errorf("failed to fetch recent transactions: %w", err)
	}

	monthlyStats, err := s.monthlySeries(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute monthly series", slog.Int("year", year))
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalIncome:        income,
		TotalExpense:       expense,
		TotalBalance:       income.Sub(expense),
		RecentTransactions: recent,
		MonthlyStats:       monthlyStats,
		Year:               year,
	}

	s.LogInfo(ctx, "Dashboard stats computed",
		slog.Int("year", year),
		slog.Int("recent_count", len(recent)))
	return stats, nil
}

func (s *reportingService) MonthlySeries(ctx context.Context, userID string, year int) ([]domain.MonthlyStat, error) {
	from, to := domain.YearRange(year)
	return s.monthlySeries(ctx, userID, from, to)
}

// monthlySeries densifies the store's sparse per-month rows into a fixed
// 12-element Jan..Dec series. Downstream charting assumes a fixed-width
// 12-bar series, so empty months report zero rather than being omitted.
func (s *reportingService) monthlySeries(ctx context.Context, userID string, from, to time.Time) ([]domain.MonthlyStat, error) {
	totals, err := s.txnRepo.MonthlyTotals(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly series: %w", err)
	}

	series := make([]domain.MonthlyStat, 12)
	for i := range series {
		series[i] = domain.MonthlyStat{
			Name:    domain.MonthName(i + 1),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}
	for _, t := range totals {
		if t.Month < 1 || t.Month > 12 {
			continue
		}
		series[t.Month-1].Income = t.Income
		series[t.Month-1].Expense = t.Expense
	}

	return series, nil
}

func (s *reportingService) FinancialSummary(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.FinancialSummary, error) {
	income, expense, err := s.txnRepo.SumAmountsByType(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum filtered totals")
		return nil, fmt.Errorf("failed to compute financial summary: %w", err)
	}

	return &domain.FinancialSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}, nil
}
