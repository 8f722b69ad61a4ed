// Package delivery defines the contract implemented by every transport server.
package delivery

import "context"

// Delivery is a transport server that can be started by the application
// lifecycle. Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
