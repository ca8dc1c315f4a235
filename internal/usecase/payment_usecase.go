package usecase

import "context"

// PaymentItemInput is one cart row submitted for checkout: the resolved
// product snapshot the storefront holds, plus the quantity.
type PaymentItemInput struct {
	Name     string
	Image    string
	Price    string
	Quantity int
}

// CreateSessionOutput carries the processor's opaque session identifier.
type CreateSessionOutput struct {
	SessionID string `json:"sessionId"`
}

// PaymentUsecase builds checkout-session requests for the external payment
// processor: one priced line per item with the unit price converted exactly
// to integer minor currency units.
type PaymentUsecase interface {
	CreateSession(ctx context.Context, items []PaymentItemInput) (*CreateSessionOutput, error)
}
