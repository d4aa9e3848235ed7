package kui

import (
	"fmt"

	"github.com/alexj212/kui/internal/core"
)

// LookaheadMax bounds how many keys a single FindKey attempt may read
// before giving up; spec.md's design constant.
const LookaheadMax = 1024

// findOutcome is FindKey's three-variant result (spec.md §9, "pushback
// as a sum type"): idle (no key available at all), expanded (a macro
// fired; the caller must retry), or key (a real key is ready).
type findOutcome int

const (
	findIdle findOutcome = iota
	findExpanded
	findKey
)

// Context is one input stage (component D): a pushback buffer, an
// ordered list of mapping sets, and an upstream Source. Both the
// terminal-decoding stage and the user-macro stage are Contexts; the
// only difference between them is what Source and mapping sets they are
// built with (see manager.go).
type Context struct {
	source    Source
	timeoutMs int

	pushback []core.Key
	sets     []*core.MappingSet

	lookahead [LookaheadMax]core.Key
}

// NewContext builds a Context reading from source with the given
// per-read timeout. Mapping sets may be added up front or later via
// AddMappingSet.
func NewContext(source Source, timeoutMs int, sets ...*core.MappingSet) *Context {
	return &Context{
		source:    source,
		timeoutMs: timeoutMs,
		sets:      append([]*core.MappingSet{}, sets...),
	}
}

// AddMappingSet appends a mapping set, taking ownership of it. Per
// spec.md §4.3.5 this is supported at any time; removal is not.
func (c *Context) AddMappingSet(s *core.MappingSet) {
	c.sets = append(c.sets, s)
}

// MappingSets returns the mapping sets in declaration order.
func (c *Context) MappingSets() []*core.MappingSet {
	return c.sets
}

// CanGetKey reports whether GetKey can return immediately without
// touching the upstream source (spec.md §4.3.4: no speculative read).
func (c *Context) CanGetKey() bool {
	return len(c.pushback) > 0
}

// nextRaw implements spec.md §4.3.1: pop the pushback buffer if
// non-empty, else pull from upstream.
func (c *Context) nextRaw() (key core.Key, idle bool, err error) {
	if len(c.pushback) > 0 {
		k := c.pushback[0]
		c.pushback = c.pushback[1:]
		return k, false, nil
	}
	return c.source.Next(c.timeoutMs)
}

// pushFront prepends keys onto the pushback buffer, preserving their
// relative order (keys[0] becomes next-to-read).
func (c *Context) pushFront(keys []core.Key) {
	if len(keys) == 0 {
		return
	}
	merged := make([]core.Key, 0, len(keys)+len(c.pushback))
	merged = append(merged, keys...)
	merged = append(merged, c.pushback...)
	c.pushback = merged
}

// findKey runs one match attempt, spec.md §4.3.2.
func (c *Context) findKey() (findOutcome, core.Key, error) {
	for _, s := range c.sets {
		s.Reset()
	}

	position := -1
readLoop:
	for {
		key, idle, err := c.nextRaw()
		if err != nil {
			return findIdle, 0, fmt.Errorf("kui: read key: %w", err)
		}
		if idle {
			break readLoop
		}

		position++
		if position >= LookaheadMax {
			return findIdle, 0, fmt.Errorf("%w: exceeded %d keys", ErrLookaheadOverflow, LookaheadMax)
		}
		c.lookahead[position] = key

		stillLooking := false
		for _, s := range c.sets {
			if s.GetState() == core.StillLooking {
				if err := s.Feed(key, position); err != nil {
					return findIdle, 0, fmt.Errorf("kui: feed: %w", err)
				}
			}
			if s.GetState() == core.StillLooking {
				stillLooking = true
			}
		}
		if !stillLooking {
			break readLoop
		}
	}

	if position == -1 {
		return findIdle, 0, nil
	}

	for _, s := range c.sets {
		s.Finalize()
	}

	// Tie-break among multiple FOUND sets: last set in list order wins
	// (spec.md §4.3.2 step 4). In manager.go the terminal and user layers
	// are separate Contexts, so this ranks only the sets of one layer; a
	// user mapping does not override a terminal-layer decode of the same
	// bytes, since the user layer only sees the terminal layer's output.
	var winner *core.Mapping
	for _, s := range c.sets {
		if m := s.Matched(); m != nil {
			winner = m
		}
	}

	read := c.lookahead[:position+1]

	if winner == nil {
		c.pushFront(append([]core.Key{}, read[1:]...))
		return findKey, read[0], nil
	}

	matchLen := len(winner.Trigger())
	leftover := append([]core.Key{}, read[matchLen:]...)
	replay := make([]core.Key, 0, len(winner.Replacement())+len(leftover))
	replay = append(replay, winner.Replacement()...)
	replay = append(replay, leftover...)
	c.pushFront(replay)

	log.Debug().Str("trigger", winner.TriggerText()).Str("replacement", winner.ReplacementText()).Msg("kui: mapping fired")
	return findExpanded, 0, nil
}

// GetKey implements spec.md §4.3.3: repeat FindKey until it returns a
// key rather than an expansion-happened signal. Returns (0, false, nil)
// on idle — no key was available within the configured timeout.
func (c *Context) GetKey() (key core.Key, ok bool, err error) {
	for {
		outcome, k, err := c.findKey()
		if err != nil {
			return 0, false, err
		}
		switch outcome {
		case findIdle:
			return 0, false, nil
		case findExpanded:
			continue
		case findKey:
			return k, true, nil
		}
	}
}
