package kui

import "github.com/alexj212/kui/internal/core"

// Key identifies either a raw byte or a symbolic key, re-exported from
// internal/core so callers never construct internal/core values
// directly. See internal/core for the full alphabet (raw bytes 1..255,
// symbolic keys from SymbolicBase up).
type Key = core.Key

// Symbolic key codes, re-exported. Keys with a natural single-byte
// encoding (Esc, Tab, CR, BS, Space) are ordinary raw Key values and
// need no symbolic constant.
const (
	KeyUp       = core.KeyUp
	KeyDown     = core.KeyDown
	KeyLeft     = core.KeyLeft
	KeyRight    = core.KeyRight
	KeyHome     = core.KeyHome
	KeyEnd      = core.KeyEnd
	KeyPageUp   = core.KeyPageUp
	KeyPageDown = core.KeyPageDown
	KeyInsert   = core.KeyInsert
	KeyDelete   = core.KeyDelete
	KeyBackTab  = core.KeyBackTab
	KeyF1       = core.KeyF1
	KeyF2       = core.KeyF2
	KeyF3       = core.KeyF3
	KeyF4       = core.KeyF4
	KeyF5       = core.KeyF5
	KeyF6       = core.KeyF6
	KeyF7       = core.KeyF7
	KeyF8       = core.KeyF8
	KeyF9       = core.KeyF9
	KeyF10      = core.KeyF10
	KeyF11      = core.KeyF11
	KeyF12      = core.KeyF12
)

// Sequence is a finite, non-empty ordered sequence of positive key
// codes, re-exported from internal/core.
type Sequence = core.Sequence

// MappingSet is an ordered collection of mappings plus the incremental
// matcher over it, re-exported from internal/core. Build one from the
// default terminal-key database (DefaultTerminalMapSet) or from user
// configuration via NewMappingSet/RegisterMapping.
type MappingSet = core.MappingSet

// Mapping is a single (trigger, replacement) pair, re-exported from
// internal/core.
type Mapping = core.Mapping

// Decoder turns textual key syntax into a Sequence, re-exported from
// internal/core. See internal/keysyntax for the default implementation.
type Decoder = core.Decoder

// NewMappingSet returns an empty mapping set.
func NewMappingSet() *MappingSet {
	return core.NewMappingSet()
}

// RegisterMapping decodes triggerText/replacementText with dec and
// registers the resulting mapping into set.
func RegisterMapping(set *MappingSet, dec Decoder, triggerText, replacementText string) error {
	m, err := core.NewMapping(dec, triggerText, replacementText)
	if err != nil {
		return err
	}
	return set.Register(m)
}
