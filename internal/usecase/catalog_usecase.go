package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadProductInput defines the data required to add a product to the catalog.
type UploadProductInput struct {
	Name        string
	Category    string
	Image       string
	Price       string
	Description string
}

// CatalogUsecase defines the interface for catalog operations. Products are
// immutable once uploaded; the shopping engine only reads them.
type CatalogUsecase interface {
	UploadProduct(ctx context.Context, input UploadProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
