// Package delivery holds the transports that expose the application.
package delivery

import "context"

// Delivery is a long-running server started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
