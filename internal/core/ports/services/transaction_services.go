package services

import (
	"context"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
	"github.com/trackspend/expense_tracker_app/internal/dto"
)

// TransactionSvcFacade exposes transaction CRUD plus filtered listing.
// The userID on every call is the authenticated owner; services never infer it
// from ambient state.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the requested page and the total number of
	// matching records.
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, page, limit int) ([]domain.Transaction, int64, error)

	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
