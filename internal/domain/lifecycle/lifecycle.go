// Package lifecycle holds process-wide lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as database pings and server shutdown.
const DefaultTimeout = 10 * time.Second
