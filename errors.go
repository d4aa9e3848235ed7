package kui

import (
	"errors"

	"github.com/alexj212/kui/internal/core"
)

// Error kinds re-exported from internal/core (spec.md §7) so callers
// never need to import internal/core just to errors.Is against them.
var (
	ErrInvalidArgument   = core.ErrInvalidArgument
	ErrLookaheadOverflow = core.ErrLookaheadOverflow
	ErrNotPresent        = core.ErrNotPresent
	ErrInvariant         = core.ErrInvariant
)

// ErrUpstreamClosed is returned by the bundled fd-backed Source
// (io_unix.go) when read(2) reports true end-of-stream, as opposed to an
// ordinary idle timeout. spec.md §9's open question on collapsing
// "timeout" and "true end-of-stream" is resolved here: the core
// read-loop (Context.findKey) keeps the source's collapsed idle/timeout
// signal faithfully, but the concrete I/O adapter one layer below is
// free to — and does — distinguish a real EOF from an idle timeout, by
// returning this error instead of the idle signal.
var ErrUpstreamClosed = errors.New("kui: upstream closed")
