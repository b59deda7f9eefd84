// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long startup checks and graceful shutdown may take.
const DefaultTimeout = 10 * time.Second
