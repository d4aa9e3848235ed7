//go:build !windows

package kui

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// fdSource implements Source directly over a file descriptor, polling
// with the requested timeout before issuing a single-byte read. This is
// spec.md §6.3's "external I/O collaborator" (read_key/data_ready),
// given a concrete body: the poll-then-read structure follows
// dshills/gokeys' VTIME-driven terminal backend, adapted to an explicit
// per-call timeout (spec.md's timeout is a Context property, not a
// terminal-mode-wide one) via golang.org/x/sys/unix.Poll rather than
// termios VTIME/VMIN.
type fdSource struct {
	fd int
}

// NewFdSource returns a Source that reads raw bytes from fd. It is the
// terminal context's upstream (spec.md §4.4): every "key" it yields is
// one raw byte, 1..255; symbolic keys only exist after the terminal
// context's mapping set has decoded an escape sequence.
func NewFdSource(fd int) Source {
	return &fdSource{fd: fd}
}

func (s *fdSource) Next(timeoutMs int) (Key, bool, error) {
	ready, err := pollReadable(s.fd, timeoutMs)
	if err != nil {
		return 0, false, fmt.Errorf("kui: poll fd %d: %w", s.fd, err)
	}
	if !ready {
		return 0, true, nil
	}

	var buf [1]byte
	n, err := unix.Read(s.fd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, true, nil
		}
		return 0, false, fmt.Errorf("kui: read fd %d: %w", s.fd, err)
	}
	if n == 0 {
		// read(2) on a regular file or a closed pipe end: true
		// end-of-stream, distinct from an idle timeout (spec.md §9's
		// open question — see ErrUpstreamClosed).
		return 0, false, ErrUpstreamClosed
	}

	return Key(buf[0]), false, nil
}

// pollReadable blocks up to timeoutMs for fd to become readable.
func pollReadable(fd, timeoutMs int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return false, err
		}
		return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
	}
}

// DataReady reports whether fd has data available within timeoutMs,
// without consuming it. This is the probe the user context's upstream
// callback uses (spec.md §4.4) to preserve idle-timeout semantics
// across the two-stage cascade without blocking inside the terminal
// context's own (short) timeout.
func DataReady(fd, timeoutMs int) (bool, error) {
	return pollReadable(fd, timeoutMs)
}
