// Package service defines interfaces for external collaborators the usecases
// depend on. Concrete implementations live under internal/infra.
package service

import "context"

// CheckoutLine is one priced line of a checkout-session request. UnitAmount is
// in integer minor currency units (cents); the conversion from the catalog's
// decimal price strings happens before the line reaches this boundary.
type CheckoutLine struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

// PaymentService creates checkout sessions with the external payment
// processor. Failures are surfaced to the caller unretried.
type PaymentService interface {
	// CreateCheckoutSession submits the priced lines and returns the
	// processor's opaque session identifier.
	CreateCheckoutSession(ctx context.Context, lines []CheckoutLine) (string, error)
}
