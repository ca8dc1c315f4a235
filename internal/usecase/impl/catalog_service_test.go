package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_UploadProduct(t *testing.T) {
	products := newMemProductRepo()
	service := NewCatalogService(products, testLogger())
	ctx := context.Background()

	product, err := service.UploadProduct(ctx, usecase.UploadProductInput{
		Name:     "teapot",
		Category: "kitchen",
		Price:    "31.99",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)

	found, err := service.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "teapot", found.Name)
}

func TestCatalogService_UploadProduct_RejectsBadPrice(t *testing.T) {
	products := newMemProductRepo()
	service := NewCatalogService(products, testLogger())

	for _, price := range []string{"free", "-2.00", "1.999"} {
		_, err := service.UploadProduct(context.Background(), usecase.UploadProductInput{
			Name:  "teapot",
			Price: price,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice, "price %q", price)
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service := NewCatalogService(newMemProductRepo(), testLogger())

	_, err := service.GetProduct(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
