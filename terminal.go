package kui

import "golang.org/x/term"

// RawMode puts the terminal connected to fd into raw mode (no line
// buffering, no echo, no signal generation) and returns a restore
// function that undoes it. This is the same MakeRaw/Restore pairing the
// teacher's Readline loop wraps its read in; a KUI Manager needs raw mode
// for the same reason: symbolic keys and macro triggers only make sense
// one byte at a time, not one line at a time.
//
// fd is almost always int(os.Stdin.Fd()).
func RawMode(fd int) (restore func() error, err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
