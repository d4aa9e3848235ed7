package kui

import "github.com/alexj212/kui/internal/keysyntax"

// DefaultDecoder returns the bundled key-syntax decoder: plain
// characters plus bracketed tokens such as <Esc>, <C-a>, <A-x>, <F1>,
// <CR>, <Tab>, <Space> (internal/keysyntax). spec.md §6.1 treats the
// decoder as an external collaborator; this is the one this module
// ships so callers don't have to bring their own.
func DefaultDecoder() Decoder {
	return keysyntax.New()
}
