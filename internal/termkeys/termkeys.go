// Package termkeys builds the default terminal-key database: the
// mappings from a terminal's multi-byte escape sequences to the symbolic
// keys of internal/core. The table is grounded on the two escape-sequence
// conventions actually seen in terminal emulators — the classic VT100/
// xterm CSI sequences, and the ECMA-48 SS3 form some terminals use for
// arrows and the first four function keys in application-cursor mode —
// both attested in xyproto/vt's key-code lookup tables and gdamore/tcell's
// terminfo-driven input decoder.
package termkeys

import "github.com/alexj212/kui/internal/core"

const esc = core.Key(27)

// entry is one raw escape sequence and the symbolic key it decodes to.
type entry struct {
	seq  []core.Key
	key  core.Key
	name string
}

func csi(bytes ...byte) []core.Key {
	seq := make([]core.Key, 0, len(bytes)+2)
	seq = append(seq, esc, core.Key('['))
	for _, b := range bytes {
		seq = append(seq, core.Key(b))
	}
	return seq
}

func ss3(b byte) []core.Key {
	return []core.Key{esc, core.Key('O'), core.Key(b)}
}

var table = []entry{
	{csi('A'), core.KeyUp, "<Up>"},
	{csi('B'), core.KeyDown, "<Down>"},
	{csi('C'), core.KeyRight, "<Right>"},
	{csi('D'), core.KeyLeft, "<Left>"},
	{ss3('A'), core.KeyUp, "<Up>"},
	{ss3('B'), core.KeyDown, "<Down>"},
	{ss3('C'), core.KeyRight, "<Right>"},
	{ss3('D'), core.KeyLeft, "<Left>"},

	{csi('H'), core.KeyHome, "<Home>"},
	{csi('F'), core.KeyEnd, "<End>"},
	{ss3('H'), core.KeyHome, "<Home>"},
	{ss3('F'), core.KeyEnd, "<End>"},
	{csi('1', '~'), core.KeyHome, "<Home>"},
	{csi('4', '~'), core.KeyEnd, "<End>"},
	{csi('7', '~'), core.KeyHome, "<Home>"},
	{csi('8', '~'), core.KeyEnd, "<End>"},

	{csi('2', '~'), core.KeyInsert, "<Insert>"},
	{csi('3', '~'), core.KeyDelete, "<Delete>"},
	{csi('5', '~'), core.KeyPageUp, "<PageUp>"},
	{csi('6', '~'), core.KeyPageDown, "<PageDown>"},

	{csi('Z'), core.KeyBackTab, "<BackTab>"},

	{ss3('P'), core.KeyF1, "<F1>"},
	{ss3('Q'), core.KeyF2, "<F2>"},
	{ss3('R'), core.KeyF3, "<F3>"},
	{ss3('S'), core.KeyF4, "<F4>"},
	{csi('1', '1', '~'), core.KeyF1, "<F1>"},
	{csi('1', '2', '~'), core.KeyF2, "<F2>"},
	{csi('1', '3', '~'), core.KeyF3, "<F3>"},
	{csi('1', '4', '~'), core.KeyF4, "<F4>"},
	{csi('1', '5', '~'), core.KeyF5, "<F5>"},
	{csi('1', '7', '~'), core.KeyF6, "<F6>"},
	{csi('1', '8', '~'), core.KeyF7, "<F7>"},
	{csi('1', '9', '~'), core.KeyF8, "<F8>"},
	{csi('2', '0', '~'), core.KeyF9, "<F9>"},
	{csi('2', '1', '~'), core.KeyF10, "<F10>"},
	{csi('2', '3', '~'), core.KeyF11, "<F11>"},
	{csi('2', '4', '~'), core.KeyF12, "<F12>"},
}

// Build returns a fresh MappingSet populated with the default terminal
// escape-sequence table. Each trigger is a raw byte sequence as produced
// by the terminal; each replacement is the single symbolic key it
// represents.
func Build() (*core.MappingSet, error) {
	set := core.NewMappingSet()
	for _, e := range table {
		m, err := core.NewMappingFromSequences(e.seq, core.Sequence{e.key}, rawText(e.seq), e.name)
		if err != nil {
			return nil, err
		}
		if err := set.Register(m); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func rawText(seq []core.Key) string {
	b := make([]byte, len(seq))
	for i, k := range seq {
		b[i] = byte(k)
	}
	return string(b)
}
