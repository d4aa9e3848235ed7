package kui

import "github.com/alexj212/kui/internal/core"

// Source is a KUI context's upstream collaborator: something that can be
// asked for the next raw key, waiting at most timeoutMs milliseconds for
// one to arrive. It is the Go shape of spec.md §4.3's "either (fd,
// timeout_ms, read_fn) or a callback closing over an upstream context" —
// both the fd-backed terminal context and the cascading user context
// satisfy it.
//
// Next returns (key, false, nil) on a valid key, (0, true, nil) on idle
// (no data within timeoutMs — not an error), or (0, false, err) on a
// hard I/O failure.
type Source interface {
	Next(timeoutMs int) (key core.Key, idle bool, err error)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(timeoutMs int) (key core.Key, idle bool, err error)

// Next calls f.
func (f SourceFunc) Next(timeoutMs int) (core.Key, bool, error) {
	return f(timeoutMs)
}

// contextSource adapts a Context into the Source its downstream stage
// pulls from, composing the idle-timeout semantic the manager needs
// (spec.md §4.4): return a buffered key immediately if one is already
// pending, else probe for data readiness before asking the upstream
// context to decode one.
type contextSource struct {
	upstream   *Context
	dataReady  func(timeoutMs int) (bool, error)
}

func (s *contextSource) Next(timeoutMs int) (core.Key, bool, error) {
	if s.upstream.CanGetKey() {
		key, ok, err := s.upstream.GetKey()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, true, nil
		}
		return key, false, nil
	}

	ready, err := s.dataReady(timeoutMs)
	if err != nil {
		return 0, false, err
	}
	if !ready {
		return 0, true, nil
	}

	key, ok, err := s.upstream.GetKey()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, true, nil
	}
	return key, false, nil
}
