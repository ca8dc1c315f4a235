// Package delivery defines the contract every transport entry point
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// server stops; shutdown is driven by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
