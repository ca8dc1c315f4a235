package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type addToCartRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required"`
}

type itemRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

type userRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// ShoppingHandler exposes the per-user line-item collections: cart,
// wishlist, saved-for-later and order history.
type ShoppingHandler struct {
	uc     usecase.ShoppingUsecase
	logger *slog.Logger
}

// NewShoppingHandler is the constructor for ShoppingHandler, injected by Fx.
func NewShoppingHandler(uc usecase.ShoppingUsecase, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *ShoppingHandler) bindItemRequest(c echo.Context) (*itemRequest, error) {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &req, nil
}

// userIDFromQuery reads the userId query parameter for the collection reads.
func userIDFromQuery(c echo.Context) (uuid.UUID, error) {
	raw := c.QueryParam("userId")
	if raw == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("userId must be a valid UUID")
	}

	return userID, nil
}

// AddToCart merges the given quantity into the user's cart.
func (h *ShoppingHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddToCart(c.Request().Context(), req.UserID, req.ProductID, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product added to cart successfully", nil)
}

// RemoveFromCart removes a line item from the cart entirely.
func (h *ShoppingHandler) RemoveFromCart(c echo.Context) error {
	req, err := h.bindItemRequest(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product removed from cart successfully", nil)
}

// IncreaseQuantity bumps a cart line's quantity by one.
func (h *ShoppingHandler) IncreaseQuantity(c echo.Context) error {
	req, err := h.bindItemRequest(c)
	if err != nil {
		return err
	}

	if err := h.uc.IncreaseQuantity(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Quantity increased successfully", nil)
}

// DecreaseQuantity lowers a cart line's quantity by one, never below one.
func (h *ShoppingHandler) DecreaseQuantity(c echo.Context) error {
	req, err := h.bindItemRequest(c)
	if err != nil {
		return err
	}

	if err := h.uc.DecreaseQuantity(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Quantity decreased successfully", nil)
}

// AddToWishlist appends the product to the wishlist. Adding a product that
// is already present is reported as a success without a second entry.
func (h *ShoppingHandler) AddToWishlist(c echo.Context) error {
	req, err := h.bindItemRequest(c)
	if err != nil {
		return err
	}

	output, err := h.uc.AddToWishlist(c.Request().Context(), req.UserID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Added {
		return response.Success(c, http.StatusOK, "Product already in wishlist", nil)
	}

	return response.Success(c, http.StatusOK, "Product added to wishlist successfully", nil)
}

// RemoveFromWishlist removes the product from the wishlist.
func (h *ShoppingHandler) RemoveFromWishlist(c echo.Context) error {
	req, err := h.bindItemRequest(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromWishlist(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product removed from WishList successfully", nil)
}

// RemoveFromSaved removes the product from the saved-for-later list.
func (h *ShoppingHandler) RemoveFromSaved(c echo.Context) error {
	req, err := h.bindItemRequest(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromSaved(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product removed from Saved Products successfully", nil)
}

// MoveToSaved relocates a cart line to saved-for-later, keeping its quantity.
func (h *ShoppingHandler) MoveToSaved(c echo.Context) error {
	req, err := h.bindItemRequest(c)
	if err != nil {
		return err
	}

	if err := h.uc.MoveCartItemToSaved(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Product moved to saved for later successfully", nil)
}

// Checkout appends the whole cart to the order history and clears the cart.
func (h *ShoppingHandler) Checkout(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CheckoutCartToOrders(c.Request().Context(), req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Products added to myorders successfully", nil)
}

// GetCart returns the cart joined against catalog snapshots.
func (h *ShoppingHandler) GetCart(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Cart retrieved successfully", items)
}

// GetWishlist returns the wishlist joined against catalog snapshots.
func (h *ShoppingHandler) GetWishlist(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.uc.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Wishlist retrieved successfully", items)
}

// GetSavedForLater returns the saved-for-later list joined against catalog
// snapshots.
func (h *ShoppingHandler) GetSavedForLater(c echo.Context) error {
	userID, err := userIDFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.uc.GetSavedForLater(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Saved products retrieved successfully", items)
}

// GetOrders returns the user's order history. The user ID arrives in the
// request body, mirroring the storefront client.
func (h *ShoppingHandler) GetOrders(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid orders input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items, err := h.uc.GetOrders(c.Request().Context(), req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Orders retrieved successfully", items)
}
