package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ResolvedLineItem is a line item joined against its catalog snapshot at read
// time. Product is nil when the reference dangles (the product was deleted
// after the item was added); readers render a placeholder instead of failing.
type ResolvedLineItem struct {
	Product  *entity.Product `json:"product"`
	Quantity int             `json:"quantity,omitempty"`
}

// AddToWishlistOutput reports whether the product was appended or was already
// present. A duplicate add is signalled, never an error.
type AddToWishlistOutput struct {
	Added bool
}

// ShoppingUsecase drives the line-item collection engine. Every mutating
// operation loads the user's profile document, applies one aggregate
// operation, and persists the whole document back; mutations for the same
// user are serialized so concurrent requests cannot lose updates.
type ShoppingUsecase interface {
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error
	IncreaseQuantity(ctx context.Context, userID, productID uuid.UUID) error
	DecreaseQuantity(ctx context.Context, userID, productID uuid.UUID) error

	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*AddToWishlistOutput, error)
	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error

	RemoveFromSaved(ctx context.Context, userID, productID uuid.UUID) error
	MoveCartItemToSaved(ctx context.Context, userID, productID uuid.UUID) error

	CheckoutCartToOrders(ctx context.Context, userID uuid.UUID) error

	GetCart(ctx context.Context, userID uuid.UUID) ([]ResolvedLineItem, error)
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]ResolvedLineItem, error)
	GetSavedForLater(ctx context.Context, userID uuid.UUID) ([]ResolvedLineItem, error)
	GetOrders(ctx context.Context, userID uuid.UUID) ([]ResolvedLineItem, error)
}
