package kui

import (
	"testing"

	"github.com/alexj212/kui/internal/core"
	"github.com/alexj212/kui/internal/keysyntax"
)

// scriptedSource replays a fixed list of Next() results, one per call.
// Once exhausted it reports idle forever — a real fd behaves the same
// way once its input is drained.
type scriptedSource struct {
	script []scriptedResult
	pos    int
}

type scriptedResult struct {
	key  core.Key
	idle bool
	err  error
}

func (s *scriptedSource) Next(timeoutMs int) (core.Key, bool, error) {
	if s.pos >= len(s.script) {
		return 0, true, nil
	}
	r := s.script[s.pos]
	s.pos++
	return r.key, r.idle, r.err
}

func scriptBytes(s string) []scriptedResult {
	out := make([]scriptedResult, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = scriptedResult{key: core.Key(s[i])}
	}
	return out
}

func mustRegister(t *testing.T, set *MappingSet, trigger, replacement string) {
	t.Helper()
	if err := RegisterMapping(set, keysyntax.New(), trigger, replacement); err != nil {
		t.Fatalf("RegisterMapping(%q, %q): %v", trigger, replacement, err)
	}
}

func TestContextOverlappingTriggers(t *testing.T) {
	// S1.
	set := NewMappingSet()
	mustRegister(t, set, "ab", "X")
	mustRegister(t, set, "abc", "Y")

	t.Run("abd", func(t *testing.T) {
		src := &scriptedSource{script: scriptBytes("abd")}
		c := NewContext(src, 100, set)

		k, ok, err := c.GetKey()
		if err != nil || !ok {
			t.Fatalf("GetKey() = %v, %v, %v", k, ok, err)
		}
		if k != 'X' {
			t.Fatalf("first key = %v, want X", k)
		}
		k, ok, err = c.GetKey()
		if err != nil || !ok || k != 'd' {
			t.Fatalf("second GetKey() = %v, %v, %v, want d", k, ok, err)
		}
	})

	t.Run("abcd", func(t *testing.T) {
		src := &scriptedSource{script: scriptBytes("abcd")}
		c := NewContext(src, 100, set)

		k, ok, err := c.GetKey()
		if err != nil || !ok || k != 'Y' {
			t.Fatalf("first GetKey() = %v, %v, %v, want Y", k, ok, err)
		}
		k, ok, err = c.GetKey()
		if err != nil || !ok || k != 'd' {
			t.Fatalf("second GetKey() = %v, %v, %v, want d", k, ok, err)
		}
	})
}

func TestContextIdleCutoff(t *testing.T) {
	// S2: register abc -> Y.

	t.Run("idle after a, b: output a, pushback b", func(t *testing.T) {
		set := NewMappingSet()
		mustRegister(t, set, "abc", "Y")

		src := &scriptedSource{script: []scriptedResult{
			{key: 'a'},
			{key: 'b'},
			{idle: true},
		}}
		c := NewContext(src, 100, set)

		k, ok, err := c.GetKey()
		if err != nil || !ok || k != 'a' {
			t.Fatalf("GetKey() = %v, %v, %v, want a", k, ok, err)
		}
		if !c.CanGetKey() {
			t.Fatalf("CanGetKey() = false, want true (b pending in pushback)")
		}
	})

	t.Run("a, b, c with no idle in between: output Y", func(t *testing.T) {
		set := NewMappingSet()
		mustRegister(t, set, "abc", "Y")

		src := &scriptedSource{script: scriptBytes("abc")}
		c := NewContext(src, 100, set)

		k, ok, err := c.GetKey()
		if err != nil || !ok || k != 'Y' {
			t.Fatalf("GetKey() = %v, %v, %v, want Y", k, ok, err)
		}
	})
}

func TestContextRecursiveExpansion(t *testing.T) {
	// S3: j -> k, kk -> Z. Input jj: output Z.
	//
	// A single mapping set can't discover this on its own: "j" and "kk"
	// share no common first byte, so raw input "jj" never looks like a
	// "kk" prefix to one flat Feed loop over raw bytes. The recursion
	// spec.md §1 describes ("macros can themselves contain keys that
	// trigger ... further macro expansion") happens across a cascade of
	// Contexts, exactly as Manager stacks the terminal and user layers:
	// the inner context fully expands each raw "j" into "k" (via its own
	// GetKey), and the outer context sees a stream of already-expanded
	// "k"s to match "kk" against.
	inner := NewContext(&scriptedSource{script: scriptBytes("jj")}, 100, NewMappingSet())
	mustRegister(t, inner.sets[0], "j", "k")

	outerSet := NewMappingSet()
	mustRegister(t, outerSet, "kk", "Z")
	outerSrc := &contextSource{
		upstream:  inner,
		dataReady: func(ms int) (bool, error) { return true, nil },
	}
	outer := NewContext(outerSrc, 100, outerSet)

	k, ok, err := outer.GetKey()
	if err != nil || !ok || k != 'Z' {
		t.Fatalf("GetKey() = %v, %v, %v, want Z", k, ok, err)
	}
}

func TestContextNoMappingSetsPassesThrough(t *testing.T) {
	src := &scriptedSource{script: scriptBytes("q")}
	c := NewContext(src, 100)

	k, ok, err := c.GetKey()
	if err != nil || !ok || k != 'q' {
		t.Fatalf("GetKey() = %v, %v, %v, want q", k, ok, err)
	}
}

func TestContextIdleWithNoInputReturnsNotOK(t *testing.T) {
	set := NewMappingSet()
	mustRegister(t, set, "ab", "X")

	src := &scriptedSource{script: []scriptedResult{{idle: true}}}
	c := NewContext(src, 100, set)

	k, ok, err := c.GetKey()
	if err != nil {
		t.Fatalf("GetKey() err = %v", err)
	}
	if ok {
		t.Fatalf("GetKey() ok = true, want false (idle)")
	}
	if k != 0 {
		t.Fatalf("GetKey() key = %v, want 0", k)
	}
}

func TestContextPropagatesHardError(t *testing.T) {
	set := NewMappingSet()
	mustRegister(t, set, "ab", "X")

	boom := errInjected
	src := &scriptedSource{script: []scriptedResult{{err: boom}}}
	c := NewContext(src, 100, set)

	_, _, err := c.GetKey()
	if err == nil {
		t.Fatalf("GetKey() err = nil, want propagated error")
	}
}

func TestContextReRegistrationWins(t *testing.T) {
	// S6.
	set := NewMappingSet()
	mustRegister(t, set, "x", "A")
	mustRegister(t, set, "x", "B")

	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}

	src := &scriptedSource{script: scriptBytes("x")}
	c := NewContext(src, 100, set)
	k, ok, err := c.GetKey()
	if err != nil || !ok || k != 'B' {
		t.Fatalf("GetKey() = %v, %v, %v, want B", k, ok, err)
	}
}

func TestContextCanGetKeyReflectsPushback(t *testing.T) {
	set := NewMappingSet()
	mustRegister(t, set, "ab", "X")

	src := &scriptedSource{script: scriptBytes("ad")}
	c := NewContext(src, 100, set)

	if c.CanGetKey() {
		t.Fatalf("CanGetKey() = true before any read, want false")
	}
	k, ok, err := c.GetKey()
	if err != nil || !ok || k != 'a' {
		t.Fatalf("GetKey() = %v, %v, %v, want a", k, ok, err)
	}
	if !c.CanGetKey() {
		t.Fatalf("CanGetKey() = false after a no-match read left 'd' pending, want true")
	}
}

var errInjected = &testError{"injected failure"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
