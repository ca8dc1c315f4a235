// Package lifecycle holds process lifecycle constants shared by the delivery
// and infrastructure layers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and store connections.
const DefaultTimeout = 10 * time.Second
