// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running transport server such as the HTTP listener.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
