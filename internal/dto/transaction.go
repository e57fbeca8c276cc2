package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

const (
	dateOnlyFormat = "2006-01-02"
	isoFormat      = "2006-01-02T15:04:05.000Z07:00"
	clockFormat    = "03:04 PM"
)

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates,
// the two shapes clients actually send.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dateOnlyFormat, value)
}

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	Type     string          `json:"type" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Title    string          `json:"title" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // optional; defaults to now
}

// OccurredAt resolves the optional date field, defaulting to the current time.
func (r CreateTransactionRequest) OccurredAt(now time.Time) (time.Time, error) {
	if r.Date == "" {
		return now, nil
	}
	t, err := parseDate(r.Date)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("Date must be a valid date")
	}
	return t, nil
}

// UpdateTransactionRequest is the body of PUT /transactions/:id. Every field is
// optional; nil pointers leave the stored value unchanged.
type UpdateTransactionRequest struct {
	Type     *string          `json:"type"`
	Category *string          `json:"category"`
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Date     *string          `json:"date"`
}

// Patch converts the request into a domain patch, parsing the optional date.
func (r UpdateTransactionRequest) Patch() (domain.TransactionPatch, error) {
	var patch domain.TransactionPatch
	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		patch.Type = &t
	}
	patch.Category = r.Category
	patch.Title = r.Title
	patch.Amount = r.Amount
	if r.Date != nil {
		occurredAt, err := parseDate(*r.Date)
		if err != nil {
			return domain.TransactionPatch{}, apperrors.NewValidationError("Date must be a valid date")
		}
		patch.OccurredAt = &occurredAt
	}
	return patch, nil
}

// TransactionFilterParams are the query parameters shared by the listing and
// summary endpoints.
type TransactionFilterParams struct {
	Type      string `form:"type"`
	Category  string `form:"category"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Month     int    `form:"month"`
	Year      int    `form:"year"`
}

// Filter resolves the raw parameters into a domain filter. A date-only end
// bound is widened to the end of its calendar day, and month+year together
// override any explicit startDate/endDate with the month's UTC bounds.
func (p TransactionFilterParams) Filter() (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter

	if p.Type != "" {
		t := domain.TransactionType(p.Type)
		if !t.IsValid() {
			return filter, apperrors.NewValidationError(`Type must be either "expense" or "income"`)
		}
		filter.Type = &t
	}
	if p.Category != "" {
		category := p.Category
		filter.Category = &category
	}
	if p.StartDate != "" {
		start, err := parseDate(p.StartDate)
		if err != nil {
			return filter, apperrors.NewValidationError("startDate must be a valid date")
		}
		filter.StartDate = &start
	}
	if p.EndDate != "" {
		end, err := parseDate(p.EndDate)
		if err != nil {
			return filter, apperrors.NewValidationError("endDate must be a valid date")
		}
		end = domain.EndOfDay(end)
		filter.EndDate = &end
	}

	if p.Month != 0 && p.Year != 0 {
		if p.Month < 1 || p.Month > 12 {
			return filter, apperrors.NewValidationError("Month must be between 1 and 12")
		}
		if p.Year < 1900 || p.Year > 2100 {
			return filter, apperrors.NewValidationError("Year must be a valid number between 1900 and 2100")
		}
		start, end := domain.MonthRange(p.Year, p.Month)
		filter.StartDate = &start
		filter.EndDate = &end
	}

	return filter, nil
}

// ListTransactionsParams are the query parameters of GET /transactions.
type ListTransactionsParams struct {
	TransactionFilterParams
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=50"`
}

// Validate checks the pagination bounds.
func (p ListTransactionsParams) Validate() error {
	if p.Page < 1 {
		return apperrors.NewValidationError("Page must be greater than 0")
	}
	if p.Limit < 1 || p.Limit > 100 {
		return apperrors.NewValidationError("Limit must be between 1 and 100")
	}
	return nil
}

// TransactionResponse is the wire shape of a single transaction.
type TransactionResponse struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
}

// ToTransactionResponse maps a domain transaction to its wire shape. Date is
// the ISO-8601 rendering of occurredAt; Time is the same instant as a display
// clock string.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       txn.TransactionID,
		Type:     string(txn.Type),
		Category: txn.Category,
		Title:    txn.Title,
		Amount:   txn.Amount,
		Date:     txn.OccurredAt.UTC().Format(isoFormat),
		Time:     txn.OccurredAt.UTC().Format(clockFormat),
	}
}

// ToTransactionResponses maps a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// PaginationResponse describes the page slice returned by a listing.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationResponse computes totalPages = ceil(total/limit).
func NewPaginationResponse(page, limit int, total int64) PaginationResponse {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ListTransactionsResponse is the data payload of GET /transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// CreateTransactionResponse is the data payload of POST /transactions: the new
// record plus the refreshed monthly series for its year.
type CreateTransactionResponse struct {
	Transaction  TransactionResponse   `json:"transaction"`
	MonthlyStats []MonthlyStatResponse `json:"monthlyStats"`
}
