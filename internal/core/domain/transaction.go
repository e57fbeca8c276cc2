package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
)

// TransactionType classifies a transaction as income or expense.
// The sign of a transaction is carried here; Amount is always positive.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense fact owned by one user.
// Records are independent: the only cross-record relationship is the implicit
// grouping by user/date/type performed during aggregation.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	UserID        string          `json:"userID"`        // Owning user; immutable after creation
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`     // Strictly positive
	OccurredAt    time.Time       `json:"occurredAt"` // Date the transaction is attributed to
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Validate checks the transaction invariants enforced before any write.
func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return apperrors.NewValidationError(`Type must be either "expense" or "income"`)
	}
	if strings.TrimSpace(t.Category) == "" {
		return apperrors.NewValidationError("Category is required and must be a non-empty string")
	}
	if strings.TrimSpace(t.Title) == "" {
		return apperrors.NewValidationError("Title is required and must be a non-empty string")
	}
	if !t.Amount.IsPositive() {
		return apperrors.NewValidationError("Amount must be greater than zero")
	}
	return nil
}

// TransactionPatch holds the fields of a partial update. Nil means "leave unchanged".
type TransactionPatch struct {
	Type       *TransactionType
	Category   *string
	Title      *string
	Amount     *decimal.Decimal
	OccurredAt *time.Time
}

// Validate checks each supplied field against the same invariants as Validate on Transaction.
func (p TransactionPatch) Validate() error {
	if p.Type != nil && !p.Type.IsValid() {
		return apperrors.NewValidationError(`Type must be either "expense" or "income"`)
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		return apperrors.NewValidationError("Category is required and must be a non-empty string")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return apperrors.NewValidationError("Title is required and must be a non-empty string")
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		return apperrors.NewValidationError("Amount must be greater than zero")
	}
	return nil
}

// IsEmpty reports whether the patch carries no changes at all.
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Category == nil && p.Title == nil && p.Amount == nil && p.OccurredAt == nil
}

// TransactionFilter narrows queries over a user's ledger. All fields are
// optional and independent; date bounds are inclusive.
type TransactionFilter struct {
	Type      *TransactionType
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}
