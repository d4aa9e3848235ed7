package core

import "fmt"

// Decoder turns the textual key syntax (e.g. "a<Esc>b<C-x>") into a
// zero-terminated key sequence. It is an external collaborator per
// spec.md §6.1 — core depends only on the shape of its result, not on any
// particular textual grammar. See internal/keysyntax for the default
// implementation this module ships.
type Decoder interface {
	Decode(text string) (Sequence, error)
}

// Mapping is an immutable (trigger, replacement) pair: what the user
// types, and what should be produced instead. The original textual forms
// are kept only for diagnostics (String, error messages) — they play no
// role in matching.
type Mapping struct {
	trigger     Sequence
	replacement Sequence

	triggerText     string
	replacementText string
}

// NewMapping decodes triggerText and replacementText via dec and returns
// the resulting Mapping. It fails if either text is empty, malformed, or
// decodes to an empty sequence — both the trigger and the replacement of
// a mapping must be non-empty key sequences.
func NewMapping(dec Decoder, triggerText, replacementText string) (*Mapping, error) {
	if dec == nil {
		return nil, fmt.Errorf("%w: nil decoder", ErrInvalidArgument)
	}
	if triggerText == "" {
		return nil, fmt.Errorf("%w: empty trigger text", ErrInvalidArgument)
	}
	if replacementText == "" {
		return nil, fmt.Errorf("%w: empty replacement text", ErrInvalidArgument)
	}

	trigger, err := dec.Decode(triggerText)
	if err != nil {
		return nil, fmt.Errorf("decode trigger %q: %w", triggerText, err)
	}
	if len(trigger) == 0 {
		return nil, fmt.Errorf("%w: trigger %q decoded to an empty sequence", ErrInvalidArgument, triggerText)
	}

	replacement, err := dec.Decode(replacementText)
	if err != nil {
		return nil, fmt.Errorf("decode replacement %q: %w", replacementText, err)
	}
	if len(replacement) == 0 {
		return nil, fmt.Errorf("%w: replacement %q decoded to an empty sequence", ErrInvalidArgument, replacementText)
	}

	return &Mapping{
		trigger:         trigger,
		replacement:     replacement,
		triggerText:     triggerText,
		replacementText: replacementText,
	}, nil
}

// NewMappingFromSequences builds a Mapping directly from already-decoded
// sequences, bypassing a Decoder. It exists for collaborators that
// construct sequences programmatically rather than from textual key
// syntax — the terminal-key database (internal/termkeys) builds its
// escape-sequence triggers this way, since they come from a fixed table
// of raw bytes rather than user-supplied text. triggerText and
// replacementText are carried along for diagnostics only.
func NewMappingFromSequences(trigger, replacement Sequence, triggerText, replacementText string) (*Mapping, error) {
	if len(trigger) == 0 {
		return nil, fmt.Errorf("%w: empty trigger", ErrInvalidArgument)
	}
	if replacement == nil {
		replacement = Sequence{}
	}
	return &Mapping{
		trigger:         trigger,
		replacement:     replacement,
		triggerText:     triggerText,
		replacementText: replacementText,
	}, nil
}

// Trigger returns the key sequence the user must type.
func (m *Mapping) Trigger() Sequence { return m.trigger }

// Replacement returns the key sequence produced on a match.
func (m *Mapping) Replacement() Sequence { return m.replacement }

// TriggerText returns the original textual trigger, for diagnostics.
func (m *Mapping) TriggerText() string { return m.triggerText }

// ReplacementText returns the original textual replacement, for
// diagnostics.
func (m *Mapping) ReplacementText() string { return m.replacementText }

func (m *Mapping) String() string {
	return fmt.Sprintf("%s -> %s", m.triggerText, m.replacementText)
}
