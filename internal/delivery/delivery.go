// Package delivery defines the serving surfaces of the application.
package delivery

import "context"

// Delivery is a long-running entry point, started once by the application
// runtime. Serve blocks until the surface is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
