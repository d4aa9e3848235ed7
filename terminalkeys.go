package kui

import "github.com/alexj212/kui/internal/termkeys"

// DefaultTerminalMapSet returns a fresh mapping set populated with the
// bundled terminal escape-sequence table (internal/termkeys). spec.md
// §6.2 treats the terminal-key database as an external collaborator;
// this is the one this module ships.
func DefaultTerminalMapSet() (*MappingSet, error) {
	return termkeys.Build()
}
