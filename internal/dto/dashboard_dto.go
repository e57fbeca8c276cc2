package dto

import (
	"github.com/shopspring/decimal"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

// DashboardParams are the query parameters of GET /dashboard.
type DashboardParams struct {
	Limit int `form:"limit,default=5"`
	Year  int `form:"year"` // zero means current year
}

// Validate checks the recent-list limit and the optional year bound.
func (p DashboardParams) Validate() error {
	if p.Limit < 1 || p.Limit > 50 {
		return apperrors.NewValidationError("Limit must be between 1 and 50")
	}
	if p.Year != 0 && (p.Year < 1900 || p.Year > 2100) {
		return apperrors.NewValidationError("Year must be a valid number between 1900 and 2100")
	}
	return nil
}

// MonthlyStatResponse is one bucket of the 12-month series on the wire.
type MonthlyStatResponse struct {
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardResponse is the data payload of GET /dashboard.
type DashboardResponse struct {
	TotalBalance       decimal.Decimal       `json:"totalBalance"`
	TotalIncome        decimal.Decimal       `json:"totalIncome"`
	TotalExpense       decimal.Decimal       `json:"totalExpense"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
	MonthlyStats       []MonthlyStatResponse `json:"monthlyStats"`
	Year               int                   `json:"year"`
}

// ToMonthlyStatResponses maps the dense domain series onto the wire shape.
func ToMonthlyStatResponses(stats []domain.MonthlyStat) []MonthlyStatResponse {
	responses := make([]MonthlyStatResponse, len(stats))
	for i, stat := range stats {
		responses[i] = MonthlyStatResponse{
			Name:    stat.Name,
			Income:  stat.Income,
			Expense: stat.Expense,
		}
	}
	return responses
}

// ToDashboardResponse maps the aggregated domain stats onto the wire shape.
func ToDashboardResponse(stats *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalBalance:       stats.TotalBalance,
		TotalIncome:        stats.TotalIncome,
		TotalExpense:       stats.TotalExpense,
		RecentTransactions: ToTransactionResponses(stats.RecentTransactions),
		MonthlyStats:       ToMonthlyStatResponses(stats.MonthlyStats),
		Year:               stats.Year,
	}
}
