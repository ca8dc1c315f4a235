// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ErrDuplicateEmail is returned when creating a profile with an email that already exists.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrConflict is returned by Save when the stored document changed since it
// was loaded (the version guard did not match). The caller decides whether to
// reload and reapply; the repository never retries on its own.
var ErrConflict = errors.New("profile modified concurrently")

// ProfileRepository defines the standard operations for profile persistence.
// The profile is a single document; Save always persists the whole aggregate
// and must be atomic with respect to that one document.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a single profile by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// FindAll retrieves every profile. Used only by the admin reporter.
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// Create persists a new profile with all collections empty.
	Create(ctx context.Context, profile *entity.Profile) error

	// Save replaces the stored document if its version still matches the
	// loaded aggregate's version, bumping the version on success.
	Save(ctx context.Context, profile *entity.Profile) error
}
