package dto

import (
	"github.com/shopspring/decimal"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

// SummaryResponse is the data payload of GET /summary: totals only.
type SummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// ToSummaryResponse maps a domain summary onto the wire shape.
func ToSummaryResponse(summary *domain.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Balance:      summary.Balance,
	}
}
