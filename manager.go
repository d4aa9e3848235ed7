package kui

import "fmt"

// Default timeouts, spec.md §4.4: a short window for the terminal layer
// (the classic escape-sequence disambiguation window) and a long one for
// the user layer (how long GetKey waits before reporting idle).
const (
	DefaultTerminalTimeoutMs = 40
	DefaultUserTimeoutMs     = 1000
)

// Option configures a Manager at construction time (the functional-
// options shape badu/term's eventDispatcher uses for its own timing
// knobs).
type Option func(*managerConfig)

type managerConfig struct {
	terminalTimeoutMs int
	userTimeoutMs     int
	terminalMapSet    *MappingSet
}

// WithTerminalTimeout overrides the terminal layer's read timeout.
func WithTerminalTimeout(ms int) Option {
	return func(c *managerConfig) { c.terminalTimeoutMs = ms }
}

// WithUserTimeout overrides the user layer's read timeout.
func WithUserTimeout(ms int) Option {
	return func(c *managerConfig) { c.userTimeoutMs = ms }
}

// WithTerminalMapSet overrides the terminal layer's mapping set. Without
// this option, NewManager populates it from DefaultTerminalMapSet.
func WithTerminalMapSet(set *MappingSet) Option {
	return func(c *managerConfig) { c.terminalMapSet = set }
}

// Manager is the two-stage cascade (component E): a terminal context
// decoding escape sequences from the fd, feeding a user context that
// applies user macros. It owns both contexts for the manager's whole
// lifetime (spec.md §4, "Lifecycle").
type Manager struct {
	fd   int
	term *Context
	user *Context
}

// NewManager builds a Manager reading from fd. The terminal layer is
// seeded with DefaultTerminalMapSet unless WithTerminalMapSet overrides
// it; the user layer starts with no mapping sets — add them with
// AddMapSet.
func NewManager(fd int, opts ...Option) (*Manager, error) {
	cfg := managerConfig{
		terminalTimeoutMs: DefaultTerminalTimeoutMs,
		userTimeoutMs:     DefaultUserTimeoutMs,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.terminalMapSet == nil {
		set, err := DefaultTerminalMapSet()
		if err != nil {
			return nil, fmt.Errorf("kui: build default terminal map set: %w", err)
		}
		cfg.terminalMapSet = set
	}

	term := NewContext(NewFdSource(fd), cfg.terminalTimeoutMs, cfg.terminalMapSet)

	userSource := &contextSource{
		upstream: term,
		dataReady: func(ms int) (bool, error) {
			return DataReady(fd, ms)
		},
	}
	user := NewContext(userSource, cfg.userTimeoutMs)

	return &Manager{fd: fd, term: term, user: user}, nil
}

// Close releases the manager. It does not restore terminal mode or
// close fd — those are the caller's concern (see RawMode) since the
// manager never owned fd, only read from it.
func (m *Manager) Close() error {
	return nil
}

// AddMapSet adds a mapping set to the user layer, taking ownership of
// it (spec.md §6.4).
func (m *Manager) AddMapSet(set *MappingSet) {
	m.user.AddMappingSet(set)
}

// GetMapSets returns the user layer's mapping sets in declaration order.
func (m *Manager) GetMapSets() []*MappingSet {
	return m.user.MappingSets()
}

// CanGetKey reports whether GetKey can return immediately.
func (m *Manager) CanGetKey() bool {
	return m.user.CanGetKey()
}

// GetKey blocks up to the user layer's timeout and returns a single
// logical key, having passed through both terminal decoding and macro
// expansion. ok is false on idle (no key within the timeout); err is
// non-nil only on a hard failure (an I/O error or lookahead overflow).
func (m *Manager) GetKey() (key Key, ok bool, err error) {
	return m.user.GetKey()
}
