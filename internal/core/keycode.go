// Package core implements the key code alphabet, mappings and the
// incremental longest-match matcher that both the terminal-decoding layer
// and the user-macro layer are built from.
package core

// Key identifies either a raw byte or a symbolic key. Zero terminates a
// sequence and is never a valid key on its own; values 1..255 are raw
// bytes as read from the terminal, values >= SymbolicBase are symbolic
// keys drawn from a fixed enumeration shared with the terminal-key
// database (arrows, function keys, navigation keys — anything a terminal
// represents as a multi-byte escape sequence rather than a single byte).
type Key int

// SymbolicBase is the first key code reserved for symbolic keys. Raw
// bytes (including the classic control-byte encodings, e.g. C-a == 1)
// always fit below it.
const SymbolicBase Key = 256

// Symbolic key codes. Keys that already have a natural single-byte
// encoding (Esc=27, Tab=9, CR=13, BS=127, Space=32) are NOT listed here:
// they are raw bytes, and the terminal-decoding layer need not do
// anything special with them. Only keys whose terminal encoding is a
// multi-byte escape sequence get a symbolic code.
const (
	KeyUp Key = SymbolicBase + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackTab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Sequence is a finite, non-empty ordered sequence of positive key codes,
// logically terminated by zero. The terminator is never stored; callers
// rely on len(Sequence) instead.
type Sequence []Key

// Equal reports whether two sequences contain the same keys in the same
// order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Compare orders two sequences under total lexicographic order on key
// codes: a sequence that is a strict prefix of another sorts first.
// Returns a negative number, zero, or a positive number as s is less
// than, equal to, or greater than o.
func (s Sequence) Compare(o Sequence) int {
	n := len(s)
	if len(o) < n {
		n = len(o)
	}
	for i := 0; i < n; i++ {
		if s[i] != o[i] {
			return int(s[i] - o[i])
		}
	}
	return len(s) - len(o)
}

// String renders a sequence in a <Name> diagnostic form; it is used only
// for error messages, never for the Feed algorithm itself.
func (s Sequence) String() string {
	b := make([]byte, 0, len(s)*4)
	for _, k := range s {
		b = append(b, keyName(k)...)
	}
	return string(b)
}

var symbolicNames = map[Key]string{
	KeyUp:       "<Up>",
	KeyDown:     "<Down>",
	KeyLeft:     "<Left>",
	KeyRight:    "<Right>",
	KeyHome:     "<Home>",
	KeyEnd:      "<End>",
	KeyPageUp:   "<PageUp>",
	KeyPageDown: "<PageDown>",
	KeyInsert:   "<Insert>",
	KeyDelete:   "<Delete>",
	KeyBackTab:  "<BackTab>",
	KeyF1:       "<F1>",
	KeyF2:       "<F2>",
	KeyF3:       "<F3>",
	KeyF4:       "<F4>",
	KeyF5:       "<F5>",
	KeyF6:       "<F6>",
	KeyF7:       "<F7>",
	KeyF8:       "<F8>",
	KeyF9:       "<F9>",
	KeyF10:      "<F10>",
	KeyF11:      "<F11>",
	KeyF12:      "<F12>",
}

func keyName(k Key) string {
	if name, ok := symbolicNames[k]; ok {
		return name
	}
	switch k {
	case 27:
		return "<Esc>"
	case 9:
		return "<Tab>"
	case 13:
		return "<CR>"
	case 127:
		return "<BS>"
	case 32:
		return "<Space>"
	}
	if k >= 1 && k <= 26 {
		return "<C-" + string(rune('a'+k-1)) + ">"
	}
	if k > 0 && k < SymbolicBase {
		return string(rune(k))
	}
	return "<?>"
}
