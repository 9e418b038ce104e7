// Package delivery holds the transports that expose carhub to the outside world.
package delivery

import "context"

// Delivery is a long-running transport started by the application bootstrap.
// Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
