// Package kui is a Key User Input engine: it turns a raw byte stream
// from a terminal file descriptor into a stream of logical keys,
// applying two layered translations in sequence — terminal escape
// sequences collapse into symbolic keys (arrows, function keys, ...),
// and user-registered macros rewrite matched key sequences into their
// replacement.
//
// Both layers share one algorithmic core, an incremental longest-match
// matcher (internal/core.MappingSet) over a sorted set of (trigger,
// replacement) mappings, composed by Context into a read loop with
// pushback for unmatched lookahead. Manager wires two Contexts into the
// terminal-decode-then-macro-expand cascade a caller actually wants:
//
//	m, err := kui.NewManager(int(os.Stdin.Fd()))
//	if err != nil { ... }
//	dec := kui.DefaultDecoder()
//	set := kui.NewMappingSet()
//	kui.RegisterMapping(set, dec, "jj", "<Esc>")
//	m.AddMapSet(set)
//	key, ok, err := m.GetKey()
package kui
