// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new profile.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Image     string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// ProfileView is the profile subset returned to the storefront. Credential
// fields never leave the usecase layer.
type ProfileView struct {
	ID        uuid.UUID `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
}

// SignupOutput reports whether the signup created a profile. Created is false
// when the email is already registered, which is signalled, not an error.
type SignupOutput struct {
	Created bool
	Profile *ProfileView
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (*ProfileView, error)
	ListProfiles(ctx context.Context) ([]ProfileView, error)
}
