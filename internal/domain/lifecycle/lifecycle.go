// Package lifecycle holds values shared by components started and stopped by fx.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (database ping, HTTP shutdown).
const DefaultTimeout = 10 * time.Second
