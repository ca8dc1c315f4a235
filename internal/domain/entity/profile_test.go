package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile() *Profile {
	return &Profile{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func TestProfile_AddToCart_MergesExistingEntry(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()

	require.NoError(t, p.AddToCart(productID, 2))
	require.NoError(t, p.AddToCart(productID, 3))

	require.Len(t, p.Cart, 1)
	assert.Equal(t, productID, p.Cart[0].ProductID)
	assert.Equal(t, 5, p.Cart[0].Quantity)
}

func TestProfile_AddToCart_AppendsDistinctProducts(t *testing.T) {
	p := newTestProfile()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, p.AddToCart(first, 1))
	require.NoError(t, p.AddToCart(second, 4))

	require.Len(t, p.Cart, 2)
	assert.Equal(t, first, p.Cart[0].ProductID)
	assert.Equal(t, second, p.Cart[1].ProductID)
}

func TestProfile_AddToCart_RejectsZeroQuantity(t *testing.T) {
	p := newTestProfile()

	err := p.AddToCart(uuid.New(), 0)

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, p.Cart)
}

func TestProfile_RemoveFromCart_MissingItemLeavesCartUnchanged(t *testing.T) {
	p := newTestProfile()
	present := uuid.New()
	require.NoError(t, p.AddToCart(present, 2))

	err := p.RemoveFromCart(uuid.New())

	assert.ErrorIs(t, err, ErrItemNotFound)
	require.Len(t, p.Cart, 1)
	assert.Equal(t, present, p.Cart[0].ProductID)
	assert.Equal(t, 2, p.Cart[0].Quantity)
}

func TestProfile_RemoveFromCart_RemovesEntireEntry(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()
	require.NoError(t, p.AddToCart(productID, 5))

	require.NoError(t, p.RemoveFromCart(productID))

	assert.Empty(t, p.Cart)
}

func TestProfile_DecreaseQuantity_FloorsAtOne(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()
	require.NoError(t, p.AddToCart(productID, 2))

	require.NoError(t, p.DecreaseQuantity(productID))
	assert.Equal(t, 1, p.Cart[0].Quantity)

	// Repeated decrements at quantity 1 are no-ops, not removals.
	for range 3 {
		require.NoError(t, p.DecreaseQuantity(productID))
	}
	require.Len(t, p.Cart, 1)
	assert.Equal(t, 1, p.Cart[0].Quantity)
}

func TestProfile_IncreaseQuantity(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()
	require.NoError(t, p.AddToCart(productID, 1))

	require.NoError(t, p.IncreaseQuantity(productID))

	assert.Equal(t, 2, p.Cart[0].Quantity)

	err := p.IncreaseQuantity(uuid.New())
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestProfile_AddToWishlist_IsIdempotent(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()

	assert.True(t, p.AddToWishlist(productID))
	assert.False(t, p.AddToWishlist(productID))

	require.Len(t, p.Wishlist, 1)
	assert.Equal(t, productID, p.Wishlist[0].ProductID)
	assert.Zero(t, p.Wishlist[0].Quantity)
}

func TestProfile_RemoveFromWishlist(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()
	p.AddToWishlist(productID)

	require.NoError(t, p.RemoveFromWishlist(productID))
	assert.Empty(t, p.Wishlist)

	err := p.RemoveFromWishlist(productID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestProfile_MoveCartItemToSaved_PreservesQuantity(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()
	other := uuid.New()
	require.NoError(t, p.AddToCart(productID, 4))
	require.NoError(t, p.AddToCart(other, 1))

	require.NoError(t, p.MoveCartItemToSaved(productID))

	require.Len(t, p.SavedForLater, 1)
	assert.Equal(t, productID, p.SavedForLater[0].ProductID)
	assert.Equal(t, 4, p.SavedForLater[0].Quantity)

	require.Len(t, p.Cart, 1)
	assert.Equal(t, other, p.Cart[0].ProductID)
}

func TestProfile_MoveCartItemToSaved_MergesExistingSavedEntry(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()

	// Move, re-add to the cart, move again: the saved list must keep one
	// entry per product with the quantities merged.
	require.NoError(t, p.AddToCart(productID, 2))
	require.NoError(t, p.MoveCartItemToSaved(productID))
	require.NoError(t, p.AddToCart(productID, 3))
	require.NoError(t, p.MoveCartItemToSaved(productID))

	require.Len(t, p.SavedForLater, 1)
	assert.Equal(t, productID, p.SavedForLater[0].ProductID)
	assert.Equal(t, 5, p.SavedForLater[0].Quantity)
	assert.Empty(t, p.Cart)

	// A single removal now clears the product from the saved list.
	require.NoError(t, p.RemoveFromSaved(productID))
	assert.Empty(t, p.SavedForLater)
}

func TestProfile_MoveCartItemToSaved_MissingItem(t *testing.T) {
	p := newTestProfile()

	err := p.MoveCartItemToSaved(uuid.New())

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Empty(t, p.SavedForLater)
}

func TestProfile_RemoveFromSaved(t *testing.T) {
	p := newTestProfile()
	productID := uuid.New()
	require.NoError(t, p.AddToCart(productID, 2))
	require.NoError(t, p.MoveCartItemToSaved(productID))

	require.NoError(t, p.RemoveFromSaved(productID))
	assert.Empty(t, p.SavedForLater)

	err := p.RemoveFromSaved(productID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestProfile_CheckoutCartToOrders_ClearsCartAndAppends(t *testing.T) {
	p := newTestProfile()
	first := uuid.New()
	second := uuid.New()
	require.NoError(t, p.AddToCart(first, 2))
	require.NoError(t, p.AddToCart(second, 1))

	// A previous purchase of the same product stays in the history.
	p.Orders = []LineItem{{ProductID: first, Quantity: 1}}

	moved := p.CheckoutCartToOrders()

	assert.Equal(t, 2, moved)
	assert.Empty(t, p.Cart)
	require.Len(t, p.Orders, 3)
	assert.Equal(t, LineItem{ProductID: first, Quantity: 1}, p.Orders[0])
	assert.Equal(t, LineItem{ProductID: first, Quantity: 2}, p.Orders[1])
	assert.Equal(t, LineItem{ProductID: second, Quantity: 1}, p.Orders[2])
}

func TestProfile_CheckoutCartToOrders_EmptyCartIsNoOp(t *testing.T) {
	p := newTestProfile()

	moved := p.CheckoutCartToOrders()

	assert.Zero(t, moved)
	assert.Empty(t, p.Cart)
	assert.Empty(t, p.Orders)
}
