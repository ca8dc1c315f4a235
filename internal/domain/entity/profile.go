package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors reported by the line-item collection operations. The usecase
// layer maps these to the application error taxonomy.
var (
	// ErrItemNotFound indicates the product has no line item in the target collection.
	ErrItemNotFound = errors.New("line item not found")

	// ErrInvalidQuantity indicates a quantity below one was supplied.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// LineItem is a product reference inside one of the profile's collections.
// Wishlist entries carry no quantity and keep it at zero.
type LineItem struct {
	ProductID uuid.UUID // Reference to a catalog product; may dangle if the product is later deleted.
	Quantity  int       // Always >= 1 for cart, saved-for-later and order entries.
}

// Profile is the per-user aggregate root. It owns the four line-item
// collections exclusively; every mutation goes through the methods below,
// which operate on the loaded aggregate in memory and leave persistence to
// the repository. A failed precondition leaves the aggregate untouched.
type Profile struct {
	ID            uuid.UUID  // Unique identifier of the profile.
	FirstName     string     // The user's first name.
	LastName      string     // The user's last name.
	Email         string     // Login identifier, unique across profiles.
	PasswordHash  string     // Bcrypt hash of the signup password; opaque to the shopping engine.
	Image         string     // Avatar image reference.
	Cart          []LineItem // Items pending checkout; unique per product, quantity >= 1.
	Wishlist      []LineItem // Set of remembered products; unique per product, no quantity.
	SavedForLater []LineItem // Items parked from the cart, quantity preserved.
	Orders        []LineItem // Append-only purchase history; duplicates allowed.
	Version       int64      // Optimistic concurrency guard bumped by the store on every save.
	CreatedAt     time.Time  // Timestamp of signup.
	UpdatedAt     time.Time  // Timestamp of the last mutation.
}

// FullName returns the display name used by the admin order report.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func findItem(items []LineItem, productID uuid.UUID) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}

	return -1
}

func removeItem(items []LineItem, idx int) []LineItem {
	return append(items[:idx], items[idx+1:]...)
}

// AddToCart merges the product into the cart: an existing entry has its
// quantity incremented, otherwise a new entry is appended. Merging by product
// reference keeps totals and checkout math free of duplicate rows.
func (p *Profile) AddToCart(productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if idx := findItem(p.Cart, productID); idx >= 0 {
		p.Cart[idx].Quantity += quantity

		return nil
	}

	p.Cart = append(p.Cart, LineItem{ProductID: productID, Quantity: quantity})

	return nil
}

// RemoveFromCart removes the product's cart entry entirely.
func (p *Profile) RemoveFromCart(productID uuid.UUID) error {
	idx := findItem(p.Cart, productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	p.Cart = removeItem(p.Cart, idx)

	return nil
}

// IncreaseQuantity bumps the cart entry's quantity by one.
func (p *Profile) IncreaseQuantity(productID uuid.UUID) error {
	idx := findItem(p.Cart, productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	p.Cart[idx].Quantity++

	return nil
}

// DecreaseQuantity lowers the cart entry's quantity by one, floored at 1.
// At quantity 1 the call is a no-op, not a removal.
func (p *Profile) DecreaseQuantity(productID uuid.UUID) error {
	idx := findItem(p.Cart, productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	if p.Cart[idx].Quantity > 1 {
		p.Cart[idx].Quantity--
	}

	return nil
}

// AddToWishlist appends the product if absent. The wishlist has set semantics:
// a duplicate add is a deliberate no-op reported as already present, never an
// error and never a merge.
func (p *Profile) AddToWishlist(productID uuid.UUID) (added bool) {
	if findItem(p.Wishlist, productID) >= 0 {
		return false
	}

	p.Wishlist = append(p.Wishlist, LineItem{ProductID: productID})

	return true
}

// RemoveFromWishlist removes the product's wishlist entry.
func (p *Profile) RemoveFromWishlist(productID uuid.UUID) error {
	idx := findItem(p.Wishlist, productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	p.Wishlist = removeItem(p.Wishlist, idx)

	return nil
}

// RemoveFromSaved removes the product's saved-for-later entry.
func (p *Profile) RemoveFromSaved(productID uuid.UUID) error {
	idx := findItem(p.SavedForLater, productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	p.SavedForLater = removeItem(p.SavedForLater, idx)

	return nil
}

// MoveCartItemToSaved relocates the full cart entry, quantity included, to
// the saved-for-later list. Saved entries are unique per product, so moving
// a product that is already saved merges the quantities the same way the
// cart merges on add. Both collections change together or not at all.
func (p *Profile) MoveCartItemToSaved(productID uuid.UUID) error {
	idx := findItem(p.Cart, productID)
	if idx < 0 {
		return ErrItemNotFound
	}

	moved := p.Cart[idx]
	p.Cart = removeItem(p.Cart, idx)

	if savedIdx := findItem(p.SavedForLater, productID); savedIdx >= 0 {
		p.SavedForLater[savedIdx].Quantity += moved.Quantity

		return nil
	}

	p.SavedForLater = append(p.SavedForLater, moved)

	return nil
}

// CheckoutCartToOrders appends every cart entry to the order history and
// clears the cart. Safe on an empty cart. Returns the number of entries moved.
func (p *Profile) CheckoutCartToOrders() int {
	moved := len(p.Cart)
	p.Orders = append(p.Orders, p.Cart...)
	p.Cart = nil

	return moved
}
