package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	"github.com/trackspend/expense_tracker_app/internal/core/domain"
)

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUpBindingError translates a gin binding failure on SignUpRequest into a
// caller-facing validation message.
func SignUpBindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Email":
				if fe.Tag() == "email" {
					return apperrors.NewValidationError("Please enter a valid email address")
				}
			case "Password":
				if fe.Tag() == "min" {
					return apperrors.NewValidationError("Password must be at least 6 characters long")
				}
			case "Name":
				if fe.Tag() == "min" {
					return apperrors.NewValidationError("Name must be at least 2 characters long")
				}
			}
		}
	}
	return apperrors.NewValidationError("Email, password, and name are required")
}

// SignInBindingError translates a gin binding failure on SignInRequest.
func SignInBindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Email" && fe.Tag() == "email" {
				return apperrors.NewValidationError("Please enter a valid email address")
			}
		}
	}
	return apperrors.NewValidationError("Email and password are required")
}

// UserResponse is the wire shape of a user account.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserResponse maps a domain user onto the wire shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// AuthResponse is the data payload of signup and signin.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ProfileResponse is the data payload of GET /auth/profile.
type ProfileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToProfileResponse maps a domain user onto the profile wire shape.
func ToProfileResponse(user *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(isoFormat),
		UpdatedAt: user.UpdatedAt.UTC().Format(isoFormat),
	}
}
