package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// MatchState is the incremental matcher's current verdict.
type MatchState int

const (
	// StillLooking means at least one registered trigger still extends
	// the prefix fed so far; more Feed calls are both legal and useful.
	StillLooking MatchState = iota
	// Found means a trigger has been fully matched: either Feed matched
	// one that no longer trigger can extend, or Finalize settled on one.
	Found
	// NotFound means no registered trigger is compatible with the
	// prefix fed so far.
	NotFound
)

func (s MatchState) String() string {
	switch s {
	case StillLooking:
		return "STILL_LOOKING"
	case Found:
		return "FOUND"
	case NotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// noBestFound marks the absence of a fully-matched candidate.
const noBestFound = -1

// MappingSet is an ordered container of mappings plus the transient
// incremental-match state described in spec.md §4.2. It is both a
// container (Register/Deregister/Iterate) and a stateful matcher
// (Reset/Feed/GetState/Finalize/Matched); the two roles alternate, never
// overlap — mutating the container between a Reset and a Finalize is
// undefined per spec.md §9 ("Cursor invalidation").
//
// entries is sorted by trigger under Sequence.Compare (design note §9:
// a sorted slice, not the source's intrusive linked list — triggers are
// short, mutations rare, and the hot path is sequential Feed, which wants
// cache-friendly contiguous storage).
type MappingSet struct {
	entries []*Mapping

	cursor    int
	state     MatchState
	bestFound int
}

// NewMappingSet returns an empty mapping set, ready to Register into and
// to Reset/Feed once populated.
func NewMappingSet() *MappingSet {
	return &MappingSet{bestFound: noBestFound}
}

func cmpTrigger(m *Mapping, target Sequence) int {
	return m.Trigger().Compare(target)
}

// Register inserts m, keeping entries sorted by trigger. If a mapping
// with an equal trigger already exists it is replaced (spec.md §4.2.1,
// §8 invariant 7: last registration wins).
func (s *MappingSet) Register(m *Mapping) error {
	if m == nil {
		return fmt.Errorf("%w: nil mapping", ErrInvalidArgument)
	}
	if len(m.Trigger()) == 0 {
		return fmt.Errorf("%w: empty trigger", ErrInvariant)
	}

	idx, found := slices.BinarySearchFunc(s.entries, m.Trigger(), cmpTrigger)
	if found {
		s.entries[idx] = m
		return nil
	}
	s.entries = slices.Insert(s.entries, idx, m)
	return nil
}

// Deregister removes the mapping whose trigger equals trigger. It
// reports ErrNotPresent, distinctly from other errors, if no such
// mapping exists (spec.md §9 resolves the source's fragile "iterator
// equals begin" check into this precise condition).
func (s *MappingSet) Deregister(trigger Sequence) error {
	idx, found := slices.BinarySearchFunc(s.entries, trigger, cmpTrigger)
	if !found {
		return ErrNotPresent
	}
	s.entries = slices.Delete(s.entries, idx, idx+1)
	return nil
}

// Iterate returns all mappings in sorted trigger order. The returned
// slice aliases internal storage and must not be mutated by the caller.
func (s *MappingSet) Iterate() []*Mapping {
	return s.entries
}

// Len returns the number of registered mappings.
func (s *MappingSet) Len() int {
	return len(s.entries)
}

// Reset begins a new match attempt: cursor points at the first entry,
// state is STILL_LOOKING (or NOT_FOUND immediately, if the set is
// empty — spec.md §4.2.2's invariant that STILL_LOOKING implies some
// entry extends the prefix can't hold over zero entries), and
// best_found is cleared.
func (s *MappingSet) Reset() {
	s.cursor = 0
	s.bestFound = noBestFound
	if len(s.entries) == 0 {
		s.state = NotFound
		return
	}
	s.state = StillLooking
}

// samePrefix reports whether a and b agree on their first n keys. Both
// must have at least n keys; a sequence shorter than n never matches.
func samePrefix(a, b Sequence, n int) bool {
	if len(a) < n || len(b) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Feed advances the matcher by one key, implementing spec.md §4.2.3
// exactly: entries is sorted, so the set of triggers compatible with the
// prefix fed so far forms a contiguous run; cursor tracks its lower
// bound, and best_found remembers the longest trigger fully matched so
// far without abandoning the search for an even longer one.
//
// Preconditions (spec.md §4.2.2): GetState() == StillLooking, position
// >= 0, key > 0, and the keys fed so far equal the first position+1 keys
// of some entry's trigger (guaranteed by the caller driving Feed only
// while StillLooking).
func (s *MappingSet) Feed(key Key, position int) error {
	if s.state != StillLooking {
		return fmt.Errorf("%w: Feed called while state is %s", ErrInvariant, s.state)
	}
	if position < 0 {
		return fmt.Errorf("%w: negative position %d", ErrInvalidArgument, position)
	}
	if key <= 0 {
		return fmt.Errorf("%w: non-positive key %d", ErrInvalidArgument, key)
	}
	if s.cursor >= len(s.entries) {
		// Reset guarantees this can't happen while StillLooking, but an
		// out-of-band mutation (see "Cursor invalidation", spec.md §9)
		// could have invalidated the index.
		return fmt.Errorf("%w: cursor out of range", ErrInvariant)
	}

	anchor := s.entries[s.cursor].Trigger()

	// Step 2: advance cursor past entries that still share the matched
	// prefix but whose next key is smaller than what was just typed —
	// "too small" to be a candidate any more. An entry whose trigger is
	// already exhausted at this position (len == position) sorts before
	// any real key at that position, so it is always "too small" here.
	for s.cursor < len(s.entries) {
		cur := s.entries[s.cursor].Trigger()
		if !samePrefix(cur, anchor, position) {
			break
		}
		if len(cur) == position || (len(cur) > position && cur[position] < key) {
			s.cursor++
			continue
		}
		break
	}

	// Step 3: does the current entry (if any) extend the prefix by key?
	if s.cursor >= len(s.entries) {
		s.state = NotFound
		return nil
	}
	cur := s.entries[s.cursor].Trigger()
	if !samePrefix(cur, anchor, position) || len(cur) <= position || cur[position] != key {
		s.state = NotFound
		return nil
	}

	// Step 4: a full match, if this entry's trigger is exactly P.
	if len(cur) == position+1 {
		s.bestFound = s.cursor
	}

	// Step 5: could further input still extend the match? Either this
	// entry itself has more keys to go, or a sibling sharing the same
	// position+1 prefix remains.
	stillLooking := len(cur) > position+1
	if !stillLooking {
		next := s.cursor + 1
		if next < len(s.entries) && samePrefix(s.entries[next].Trigger(), cur, position+1) {
			stillLooking = true
		}
	}

	if stillLooking {
		s.state = StillLooking
	} else {
		s.state = Found
	}
	return nil
}

// GetState returns the matcher's current verdict.
func (s *MappingSet) GetState() MatchState {
	return s.state
}

// Finalize settles the match attempt. If a trigger was fully matched at
// any point (best_found present), cursor moves there and state becomes
// FOUND, even if Feed had since moved on to NOT_FOUND while looking for
// a longer trigger. Absent best_found, the attempt is NOT_FOUND
// regardless of what state Feed left behind (e.g. STILL_LOOKING when the
// sole registered trigger is longer than what was typed before an idle
// cutoff: a partial prefix is not itself a match).
func (s *MappingSet) Finalize() {
	if s.bestFound != noBestFound {
		s.cursor = s.bestFound
		s.state = Found
		return
	}
	s.state = NotFound
}

// Matched returns the mapping Finalize settled on, or nil if the match
// attempt did not find one.
func (s *MappingSet) Matched() *Mapping {
	if s.state != Found {
		return nil
	}
	if s.cursor < 0 || s.cursor >= len(s.entries) {
		return nil
	}
	return s.entries[s.cursor]
}
