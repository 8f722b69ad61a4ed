// Package lifecycle holds shared constants for service startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a graceful shutdown may take.
const DefaultTimeout = 10 * time.Second
