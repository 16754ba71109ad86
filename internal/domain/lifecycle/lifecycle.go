// Package lifecycle holds shared bounds for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop work such as pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
