package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

func validTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-1",
		UserID:        "user-1",
		Type:          domain.Expense,
		Category:      "Groceries",
		Title:         "Weekly shop",
		Amount:        decimal.NewFromFloat(42.50),
		OccurredAt:    time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr string
	}{
		{
			name:   "valid expense",
			mutate: func(txn *domain.Transaction) {},
		},
		{
			name:   "valid income",
			mutate: func(txn *domain.Transaction) { txn.Type = domain.Income },
		},
		{
			name:    "unknown type",
			mutate:  func(txn *domain.Transaction) { txn.Type = "transfer" },
			wantErr: `Type must be either "expense" or "income"`,
		},
		{
			name:    "empty category",
			mutate:  func(txn *domain.Transaction) { txn.Category = "   " },
			wantErr: "Category is required and must be a non-empty string",
		},
		{
			name:    "empty title",
			mutate:  func(txn *domain.Transaction) { txn.Title = "" },
			wantErr: "Title is required and must be a non-empty string",
		},
		{
			name:    "zero amount",
			mutate:  func(txn *domain.Transaction) { txn.Amount = decimal.Zero },
			wantErr: "Amount must be greater than zero",
		},
		{
			name:    "negative amount",
			mutate:  func(txn *domain.Transaction) { txn.Amount = decimal.NewFromInt(-5) },
			wantErr: "Amount must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTransaction()
			tt.mutate(&txn)

			err := txn.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.wantErr, apperrors.MessageFor(err, ""))
		})
	}
}

func TestTransactionPatch_Validate(t *testing.T) {
	badType := domain.TransactionType("loan")
	emptyTitle := " "
	negative := decimal.NewFromInt(-1)
	category := "Bills"

	tests := []struct {
		name    string
		patch   domain.TransactionPatch
		wantErr string
	}{
		{
			name:  "empty patch is valid",
			patch: domain.TransactionPatch{},
		},
		{
			name:  "category only",
			patch: domain.TransactionPatch{Category: &category},
		},
		{
			name:    "invalid type",
			patch:   domain.TransactionPatch{Type: &badType},
			wantErr: `Type must be either "expense" or "income"`,
		},
		{
			name:    "blank title",
			patch:   domain.TransactionPatch{Title: &emptyTitle},
			wantErr: "Title is required and must be a non-empty string",
		},
		{
			name:    "non-positive amount",
			patch:   domain.TransactionPatch{Amount: &negative},
			wantErr: "Amount must be greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, apperrors.MessageFor(err, ""))
		})
	}
}

func TestTransactionPatch_IsEmpty(t *testing.T) {
	assert.True(t, domain.TransactionPatch{}.IsEmpty())

	title := "Rent"
	assert.False(t, domain.TransactionPatch{Title: &title}.IsEmpty())
}
