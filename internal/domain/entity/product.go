// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog record. The shopping engine never mutates products;
// line items reference them by ID and resolve a snapshot at read time.
type Product struct {
	ID          uuid.UUID `json:"_id"`         // Unique identifier of the product.
	Name        string    `json:"name"`        // Display name shown in listings and checkout lines.
	Category    string    `json:"category"`    // Free-form category label used by the storefront UI.
	Image       string    `json:"image"`       // Image reference (URL or data URI) for the product.
	Price       Price     `json:"price"`       // Unit price as a decimal string, e.g. "19.99".
	Description string    `json:"description"` // Long-form product description.
	CreatedAt   time.Time `json:"createdAt"`   // Timestamp of when the product was uploaded.
}
