package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/trackspend/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackspend/expense_tracker_app/internal/dto"
)

// transactionService implements TransactionSvcFacade on top of the transaction
// repository. All invariants are checked before any write is attempted.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := time.Now().UTC()

	occurredAt, err := req.OccurredAt(now)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.TransactionType(req.Type),
		Category:      req.Category,
		Title:         req.Title,
		Amount:        req.Amount,
		OccurredAt:    occurredAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, page, limit int) ([]domain.Transaction, int64, error) {
	total, err := s.txnRepo.CountTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions")
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	offset := (page - 1) * limit
	txns, err := s.txnRepo.FindTransactions(ctx, userID, filter, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to query transactions")
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, total, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	patch, err := req.Patch()
	if err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		// Nothing to change; return the current record so the caller still
		// gets a not-found for foreign or missing IDs.
		return s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	}

	txn, err := s.txnRepo.UpdateTransaction(ctx, transactionID, userID, patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, userID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
