package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for catalog persistence. The
// shopping engine only reads from it; writes come from the upload endpoint.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves every product in the catalog.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product record.
	Create(ctx context.Context, product *entity.Product) error
}
