// Package keysyntax implements the default textual key syntax: the
// vim/inputrc convention of plain characters plus bracketed tokens like
// <Esc>, <C-a>, <A-x>, <F1>, <CR>, <Tab>, <Space>, <S-Tab>. It is the
// default core.Decoder this module ships, grounded on the bracketed-token
// grammar used throughout the terminal-input ecosystem (readline's own
// inputrc files, and the vim-style pattern parser kungfusheep/riffkey
// implements for key-binding configuration).
package keysyntax

import (
	"fmt"
	"strings"

	"github.com/alexj212/kui/internal/core"
)

// Decoder parses the bracketed textual key syntax into a core.Sequence.
// It implements core.Decoder.
type Decoder struct{}

// New returns the default key-syntax decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode parses text into a key sequence. An empty string decodes to an
// empty, non-nil sequence.
func (Decoder) Decode(text string) (core.Sequence, error) {
	runes := []rune(text)
	seq := make(core.Sequence, 0, len(runes))

	for i := 0; i < len(runes); {
		if runes[i] != '<' {
			seq = append(seq, core.Key(runes[i]))
			i++
			continue
		}

		end := i + 1
		for end < len(runes) && runes[end] != '>' {
			end++
		}
		if end >= len(runes) {
			return nil, fmt.Errorf("%w: unterminated %q in %q", core.ErrInvalidArgument, "<", text)
		}

		keys, err := parseToken(string(runes[i+1 : end]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q: %v", core.ErrInvalidArgument, runes[i:end+1], text, err)
		}
		seq = append(seq, keys...)
		i = end + 1
	}

	return seq, nil
}

// specialNames maps a <...> token's final, case-folded component to the
// key it names. Tokens with a natural single-byte encoding (Esc, Tab, CR,
// BS, Space) resolve to raw bytes; the rest resolve to symbolic codes
// from internal/core.
var specialNames = map[string]core.Key{
	"esc":      27,
	"escape":   27,
	"cr":       13,
	"enter":    13,
	"return":   13,
	"tab":      9,
	"space":    32,
	"bs":       127,
	"backspace": 127,
	"up":       core.KeyUp,
	"down":     core.KeyDown,
	"left":     core.KeyLeft,
	"right":    core.KeyRight,
	"home":     core.KeyHome,
	"end":      core.KeyEnd,
	"pageup":   core.KeyPageUp,
	"pgup":     core.KeyPageUp,
	"pagedown": core.KeyPageDown,
	"pgdn":     core.KeyPageDown,
	"insert":   core.KeyInsert,
	"ins":      core.KeyInsert,
	"delete":   core.KeyDelete,
	"del":      core.KeyDelete,
	"backtab":  core.KeyBackTab,
	"f1":       core.KeyF1,
	"f2":       core.KeyF2,
	"f3":       core.KeyF3,
	"f4":       core.KeyF4,
	"f5":       core.KeyF5,
	"f6":       core.KeyF6,
	"f7":       core.KeyF7,
	"f8":       core.KeyF8,
	"f9":       core.KeyF9,
	"f10":      core.KeyF10,
	"f11":      core.KeyF11,
	"f12":      core.KeyF12,
}

// parseToken parses the content of a <...> token, e.g. "C-a", "A-Up",
// "S-Tab", "F5". Modifiers (C, A/M for Alt/Meta, S for Shift) may stack
// and must precede the final component.
func parseToken(token string) ([]core.Key, error) {
	parts := strings.Split(token, "-")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return nil, fmt.Errorf("empty key name")
	}

	var ctrl, alt, shift bool
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			ctrl = true
		case "a", "m":
			alt = true
		case "s":
			shift = true
		default:
			return nil, fmt.Errorf("unknown modifier %q", p)
		}
	}

	final := parts[len(parts)-1]
	base, baseIsRune, err := resolveFinal(final)
	if err != nil {
		return nil, err
	}

	if shift {
		switch {
		case baseIsRune:
			base = core.Key(strings.ToUpper(string(rune(base)))[0])
		case base == 9:
			// S-Tab is the BackTab key.
			base = core.KeyBackTab
		default:
			return nil, fmt.Errorf("shift modifier is only valid on a plain character or Tab")
		}
	}

	if ctrl {
		if !baseIsRune {
			return nil, fmt.Errorf("ctrl modifier is only valid on a plain character")
		}
		base = controlByte(rune(base))
	}

	if alt {
		// Classic terminal convention: Alt/Meta is encoded as a leading
		// Esc before the (possibly Ctrl/Shift-modified) base key.
		return []core.Key{27, base}, nil
	}
	return []core.Key{base}, nil
}

// resolveFinal resolves the final component of a token to a key, and
// reports whether it is a plain printable character (as opposed to a
// named special key), since only plain characters accept Ctrl/Shift.
func resolveFinal(s string) (core.Key, bool, error) {
	if k, ok := specialNames[strings.ToLower(s)]; ok {
		return k, false, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false, fmt.Errorf("unknown key name %q", s)
	}
	return core.Key(runes[0]), true, nil
}

// controlByte computes the classic control-byte encoding for a letter,
// e.g. C-a == 1, C-z == 26. Non-letters fall back to masking off the
// top three bits, the same rule terminals themselves apply.
func controlByte(r rune) core.Key {
	upper := r
	if upper >= 'a' && upper <= 'z' {
		upper = upper - 'a' + 'A'
	}
	return core.Key(upper & 0x1f)
}
