package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// monthNames are the fixed labels of the monthly series, January first.
var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthName returns the label for a 1-based calendar month.
func MonthName(month int) string {
	return monthNames[month-1]
}

// MonthlyStat is one bucket of the dashboard's 12-month series.
type MonthlyStat struct {
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyTotal is a raw per-month aggregation row as produced by the store.
// Months with no matching records are absent; densification happens in the service.
type MonthlyTotal struct {
	Month   int // 1-based calendar month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DashboardStats aggregates one user's ledger for a single calendar year.
type DashboardStats struct {
	TotalBalance       decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	RecentTransactions []Transaction
	MonthlyStats       []MonthlyStat // Always exactly 12 entries, Jan..Dec
	Year               int
}

// FinancialSummary holds filtered aggregate totals with no time bucketing.
type FinancialSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// YearRange returns the inclusive UTC bounds of a calendar year,
// [Jan 1 00:00:00.000, Dec 31 23:59:59.999].
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}

// MonthRange returns the inclusive UTC bounds of a calendar month.
// Day 0 of the following month normalizes to the last day of the target month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}

// EndOfDay normalizes t to the last instant of its calendar day in UTC, so a
// date-only end bound is inclusive of that whole day.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999_000_000, time.UTC)
}
