package kui

import "github.com/rs/zerolog"

// log is the package-level logger. It defaults to a no-op logger so
// importing this module is silent by default; callers that want
// visibility into fired mappings call SetLogger with a configured
// zerolog.Logger. Idle timeouts, pushback and errors are not logged.
var log zerolog.Logger = zerolog.Nop()

// SetLogger installs l as the package-level logger. Every log line this
// module emits is at Debug level or lower — nothing here is ever a
// warning or an error on its own; errors are returned, not logged.
func SetLogger(l zerolog.Logger) {
	log = l
}
