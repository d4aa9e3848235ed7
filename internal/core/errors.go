package core

import "errors"

// Error kinds, per spec.md §7. These are sentinel errors rather than an
// exception hierarchy: every operation in this package returns an error
// explicitly, and callers are expected to errors.Is against these.
var (
	// ErrInvalidArgument covers a nil/zero argument, a negative Feed
	// position, a zero key fed to the matcher, or malformed key-syntax
	// text handed to a Decoder.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrLookaheadOverflow is returned when a match attempt needs more
	// than LookaheadMax keys of lookahead.
	ErrLookaheadOverflow = errors.New("core: lookahead overflow")

	// ErrNotPresent is returned by Deregister when no mapping has the
	// given trigger.
	ErrNotPresent = errors.New("core: trigger not present")

	// ErrInvariant marks an internal invariant violation: Feed called
	// while the matcher was not STILL_LOOKING, an entry with an empty
	// trigger, or a corrupted sort order.
	ErrInvariant = errors.New("core: invariant violation")
)
