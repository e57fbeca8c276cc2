package services

import (
	"context"

	"github.com/trackspend/expense_tracker_app/internal/core/domain"
	"github.com/trackspend/expense_tracker_app/internal/dto"
)

// UserSvcFacade handles account registration and credential checks.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.SignUpRequest) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
