// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userLocks serializes profile mutations per user ID. Locks are never
// reclaimed; the map is bounded by the number of distinct users seen by this
// process.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *userLocks) of(userID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}

	return lock
}

// shoppingService implements the ShoppingUsecase interface. Each mutation is
// load profile -> apply one aggregate operation -> save the whole document,
// under the user's lock so two concurrent increments cannot lose an update.
type shoppingService struct {
	profiles repository.ProfileRepository
	products repository.ProductRepository
	locks    *userLocks
	logger   *slog.Logger
}

// NewShoppingService is the constructor for shoppingService.
func NewShoppingService(
	profiles repository.ProfileRepository,
	products repository.ProductRepository,
	logger *slog.Logger,
) usecase.ShoppingUsecase {
	return &shoppingService{
		profiles: profiles,
		products: products,
		locks:    newUserLocks(),
		logger:   logger,
	}
}

// loadProfile fetches the aggregate, translating the repository sentinel to
// the application taxonomy.
func (srv *shoppingService) loadProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("load profile")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// mutate runs one engine operation against the user's profile and persists
// the result. The operation returns entity-level sentinels which are mapped
// to application errors here; a failed operation skips the save entirely.
func (srv *shoppingService) mutate(ctx context.Context, userID uuid.UUID, op func(*entity.Profile) error) error {
	lock := srv.locks.of(userID)
	lock.Lock()
	defer lock.Unlock()

	profile, err := srv.loadProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := op(profile); err != nil {
		switch {
		case errors.Is(err, entity.ErrItemNotFound):
			return domainerrors.ErrItemNotFound.WrapMessage("apply operation")
		case errors.Is(err, entity.ErrInvalidQuantity):
			return domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
		default:
			return errors.Wrap(err, "failed to apply profile operation")
		}
	}

	return srv.saveProfile(ctx, userID, profile)
}

// saveProfile persists the mutated aggregate, translating a version-guard
// conflict to the application taxonomy.
func (srv *shoppingService) saveProfile(ctx context.Context, userID uuid.UUID, profile *entity.Profile) error {
	if err := srv.profiles.Save(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			// The per-user lock makes this unreachable within one process;
			// a second writer (another deployment) hit the version guard.
			srv.logger.Warn("Concurrent profile modification detected", "userID", userID)

			return domainerrors.ErrInternalError.WrapMessage("profile modified concurrently")
		}

		return errors.Wrap(err, "failed to save profile")
	}

	return nil
}

// validateProduct checks that the referenced product exists in the catalog.
// Only the operations marked as product-validating call this.
func (srv *shoppingService) validateProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := srv.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("validate product")
		}

		return errors.Wrap(err, "failed to validate product")
	}

	return nil
}

// AddToCart merges the product into the user's cart.
func (srv *shoppingService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	srv.logger.Debug("Adding product to cart", "userID", userID, "productID", productID, "quantity", quantity)

	if err := srv.validateProduct(ctx, productID); err != nil {
		return err
	}

	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		return p.AddToCart(productID, quantity)
	})
}

// RemoveFromCart removes the product's cart entry.
func (srv *shoppingService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error {
	srv.logger.Debug("Removing product from cart", "userID", userID, "productID", productID)

	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		return p.RemoveFromCart(productID)
	})
}

// IncreaseQuantity bumps a cart entry's quantity by one.
func (srv *shoppingService) IncreaseQuantity(ctx context.Context, userID, productID uuid.UUID) error {
	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		return p.IncreaseQuantity(productID)
	})
}

// DecreaseQuantity lowers a cart entry's quantity by one, floored at 1.
func (srv *shoppingService) DecreaseQuantity(ctx context.Context, userID, productID uuid.UUID) error {
	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		return p.DecreaseQuantity(productID)
	})
}

// AddToWishlist appends the product to the wishlist if absent. A duplicate
// add is reported as already present and skips the save, so the no-op never
// touches the stored document.
func (srv *shoppingService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*usecase.AddToWishlistOutput, error) {
	srv.logger.Debug("Adding product to wishlist", "userID", userID, "productID", productID)

	if err := srv.validateProduct(ctx, productID); err != nil {
		return nil, err
	}

	lock := srv.locks.of(userID)
	lock.Lock()
	defer lock.Unlock()

	profile, err := srv.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	output := &usecase.AddToWishlistOutput{Added: profile.AddToWishlist(productID)}
	if !output.Added {
		return output, nil
	}

	if err := srv.saveProfile(ctx, userID, profile); err != nil {
		return nil, err
	}

	return output, nil
}

// RemoveFromWishlist removes the product's wishlist entry.
func (srv *shoppingService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		return p.RemoveFromWishlist(productID)
	})
}

// RemoveFromSaved removes the product's saved-for-later entry.
func (srv *shoppingService) RemoveFromSaved(ctx context.Context, userID, productID uuid.UUID) error {
	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		return p.RemoveFromSaved(productID)
	})
}

// MoveCartItemToSaved relocates a cart entry, quantity preserved, to the
// saved-for-later list.
func (srv *shoppingService) MoveCartItemToSaved(ctx context.Context, userID, productID uuid.UUID) error {
	srv.logger.Debug("Moving cart item to saved for later", "userID", userID, "productID", productID)

	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		return p.MoveCartItemToSaved(productID)
	})
}

// CheckoutCartToOrders appends the cart to the order history and clears it.
func (srv *shoppingService) CheckoutCartToOrders(ctx context.Context, userID uuid.UUID) error {
	return srv.mutate(ctx, userID, func(p *entity.Profile) error {
		moved := p.CheckoutCartToOrders()
		srv.logger.Info("Cart checked out to orders", "userID", userID, "items", moved)

		return nil
	})
}

// resolve joins line items against catalog snapshots. A deleted product
// leaves a nil snapshot in place of the entry instead of failing the read.
func (srv *shoppingService) resolve(ctx context.Context, items []entity.LineItem) ([]usecase.ResolvedLineItem, error) {
	resolved := make([]usecase.ResolvedLineItem, 0, len(items))
	for _, item := range items {
		product, err := srv.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if !errors.Is(err, repository.ErrProductNotFound) {
				return nil, errors.Wrap(err, "failed to resolve product snapshot")
			}
			product = nil
		}

		resolved = append(resolved, usecase.ResolvedLineItem{
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	return resolved, nil
}

// GetCart returns the cart with resolved product snapshots.
func (srv *shoppingService) GetCart(ctx context.Context, userID uuid.UUID) ([]usecase.ResolvedLineItem, error) {
	profile, err := srv.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.resolve(ctx, profile.Cart)
}

// GetWishlist returns the wishlist with resolved product snapshots.
func (srv *shoppingService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]usecase.ResolvedLineItem, error) {
	profile, err := srv.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.resolve(ctx, profile.Wishlist)
}

// GetSavedForLater returns the saved-for-later list with resolved snapshots.
func (srv *shoppingService) GetSavedForLater(ctx context.Context, userID uuid.UUID) ([]usecase.ResolvedLineItem, error) {
	profile, err := srv.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.resolve(ctx, profile.SavedForLater)
}

// GetOrders returns the order history with resolved snapshots.
func (srv *shoppingService) GetOrders(ctx context.Context, userID uuid.UUID) ([]usecase.ResolvedLineItem, error) {
	profile, err := srv.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.resolve(ctx, profile.Orders)
}
