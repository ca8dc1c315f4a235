package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(products repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		products: products,
		logger:   logger,
	}
}

// UploadProduct adds a product to the catalog. The price string is validated
// here so every record the shopping engine later snapshots converts cleanly
// to minor units at checkout.
func (srv *catalogService) UploadProduct(ctx context.Context, input usecase.UploadProductInput) (*entity.Product, error) {
	price := entity.Price(input.Price)
	if err := price.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidPrice.WithDetails(err.Error())
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Image:       input.Image,
		Price:       price,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.products.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product uploaded", "productID", product.ID, "name", product.Name)

	return product, nil
}

// GetProduct looks up a single catalog record.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("get product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts returns the whole catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.products.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}
