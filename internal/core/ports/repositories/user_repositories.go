package repositories

import (
	"context"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// SaveUser inserts a new user. A duplicate email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
