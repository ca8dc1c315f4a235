package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type shoppingFixtures struct {
	service  *shoppingService
	profiles *memProfileRepo
	products *memProductRepo
	userID   uuid.UUID
}

func createShoppingFixtures(t *testing.T) shoppingFixtures {
	t.Helper()
	profiles := newMemProfileRepo()
	products := newMemProductRepo()
	service := NewShoppingService(profiles, products, testLogger()).(*shoppingService)
	userID := profiles.seed(t, &entity.Profile{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})

	return shoppingFixtures{service: service, profiles: profiles, products: products, userID: userID}
}

func TestShoppingService_AddToCart_MergesAndPersists(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "keyboard", "49.90")

	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 2))
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 3))

	stored := fx.profiles.get(t, fx.userID)
	require.Len(t, stored.Cart, 1)
	assert.Equal(t, 5, stored.Cart[0].Quantity)
}

func TestShoppingService_AddToCart_UnknownProduct(t *testing.T) {
	fx := createShoppingFixtures(t)

	err := fx.service.AddToCart(context.Background(), fx.userID, uuid.New(), 1)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Empty(t, fx.profiles.get(t, fx.userID).Cart)
}

func TestShoppingService_AddToCart_UnknownUser(t *testing.T) {
	fx := createShoppingFixtures(t)
	productID := fx.products.seed(t, "mouse", "9.99")

	err := fx.service.AddToCart(context.Background(), uuid.New(), productID, 1)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestShoppingService_RemoveFromCart_MissingItemLeavesStoreUntouched(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "monitor", "199.00")
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 1))

	err := fx.service.RemoveFromCart(ctx, fx.userID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	stored := fx.profiles.get(t, fx.userID)
	require.Len(t, stored.Cart, 1)
	assert.Equal(t, productID, stored.Cart[0].ProductID)
}

func TestShoppingService_DecreaseQuantity_FloorsAtOne(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "cable", "3.50")
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 1))

	require.NoError(t, fx.service.DecreaseQuantity(ctx, fx.userID, productID))
	require.NoError(t, fx.service.DecreaseQuantity(ctx, fx.userID, productID))

	stored := fx.profiles.get(t, fx.userID)
	require.Len(t, stored.Cart, 1)
	assert.Equal(t, 1, stored.Cart[0].Quantity)
}

func TestShoppingService_AddToWishlist_DuplicateSignalsAlreadyPresent(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "lamp", "25.00")

	first, err := fx.service.AddToWishlist(ctx, fx.userID, productID)
	require.NoError(t, err)
	assert.True(t, first.Added)

	second, err := fx.service.AddToWishlist(ctx, fx.userID, productID)
	require.NoError(t, err)
	assert.False(t, second.Added)

	stored := fx.profiles.get(t, fx.userID)
	require.Len(t, stored.Wishlist, 1)
}

func TestShoppingService_AddToWishlist_DuplicateSkipsSave(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "poster", "12.00")

	first, err := fx.service.AddToWishlist(ctx, fx.userID, productID)
	require.NoError(t, err)
	require.True(t, first.Added)
	versionAfterAdd := fx.profiles.get(t, fx.userID).Version

	second, err := fx.service.AddToWishlist(ctx, fx.userID, productID)
	require.NoError(t, err)
	require.False(t, second.Added)

	// The no-op path must not write, so the stored version stays put.
	assert.Equal(t, versionAfterAdd, fx.profiles.get(t, fx.userID).Version)
}

func TestShoppingService_MoveCartItemToSaved_MergesExistingSavedEntry(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "chair", "120.00")

	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 2))
	require.NoError(t, fx.service.MoveCartItemToSaved(ctx, fx.userID, productID))
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 3))
	require.NoError(t, fx.service.MoveCartItemToSaved(ctx, fx.userID, productID))

	stored := fx.profiles.get(t, fx.userID)
	assert.Empty(t, stored.Cart)
	require.Len(t, stored.SavedForLater, 1)
	assert.Equal(t, 5, stored.SavedForLater[0].Quantity)
}

func TestShoppingService_MoveCartItemToSaved_PreservesQuantity(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "desk", "320.00")
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 4))

	require.NoError(t, fx.service.MoveCartItemToSaved(ctx, fx.userID, productID))

	stored := fx.profiles.get(t, fx.userID)
	assert.Empty(t, stored.Cart)
	require.Len(t, stored.SavedForLater, 1)
	assert.Equal(t, 4, stored.SavedForLater[0].Quantity)
}

func TestShoppingService_CheckoutCartToOrders(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	first := fx.products.seed(t, "chair", "120.00")
	second := fx.products.seed(t, "rug", "60.00")
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, first, 2))
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, second, 1))

	require.NoError(t, fx.service.CheckoutCartToOrders(ctx, fx.userID))

	stored := fx.profiles.get(t, fx.userID)
	assert.Empty(t, stored.Cart)
	require.Len(t, stored.Orders, 2)

	// Checking out again with an empty cart is a safe no-op.
	require.NoError(t, fx.service.CheckoutCartToOrders(ctx, fx.userID))
	assert.Len(t, fx.profiles.get(t, fx.userID).Orders, 2)
}

func TestShoppingService_ConcurrentAddToCart_NoLostIncrements(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "sticker", "1.00")

	const n = 50
	g, ctx := errgroup.WithContext(ctx)
	for range n {
		g.Go(func() error {
			return fx.service.AddToCart(ctx, fx.userID, productID, 1)
		})
	}
	require.NoError(t, g.Wait())

	stored := fx.profiles.get(t, fx.userID)
	require.Len(t, stored.Cart, 1)
	assert.Equal(t, n, stored.Cart[0].Quantity)
}

func TestShoppingService_VersionConflictSurfacesAsInternalError(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "lamp", "25.00")

	// An out-of-process writer beats us to the save; the version guard fires.
	fx.profiles.saveErr = repository.ErrConflict

	err := fx.service.AddToCart(ctx, fx.userID, productID, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestShoppingService_GetCart_DanglingProductYieldsPlaceholder(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "vase", "18.00")
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 2))

	// Simulate the product being deleted after it entered the cart.
	fx.products.mu.Lock()
	delete(fx.products.products, productID)
	fx.products.mu.Unlock()

	items, err := fx.service.GetCart(ctx, fx.userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Product)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestShoppingService_GetOrders_ResolvesSnapshots(t *testing.T) {
	fx := createShoppingFixtures(t)
	ctx := context.Background()
	productID := fx.products.seed(t, "mug", "8.00")
	require.NoError(t, fx.service.AddToCart(ctx, fx.userID, productID, 3))
	require.NoError(t, fx.service.CheckoutCartToOrders(ctx, fx.userID))

	orders, err := fx.service.GetOrders(ctx, fx.userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].Product)
	assert.Equal(t, "mug", orders[0].Product.Name)
	assert.Equal(t, 3, orders[0].Quantity)
}
