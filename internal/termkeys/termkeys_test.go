package termkeys

import (
	"testing"

	"github.com/alexj212/kui/internal/core"
)

func feedUntilDone(t *testing.T, set *core.MappingSet, input core.Sequence) {
	t.Helper()
	set.Reset()
	for i, k := range input {
		if set.GetState() != core.StillLooking {
			break
		}
		if err := set.Feed(k, i); err != nil {
			t.Fatalf("Feed: %v", err)
		}
	}
	set.Finalize()
}

func TestBuildArrowKeys(t *testing.T) {
	set, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	cases := []struct {
		name  string
		input core.Sequence
		want  core.Key
	}{
		{"CSI up", core.Sequence{27, '[', 'A'}, core.KeyUp},
		{"SS3 up", core.Sequence{27, 'O', 'A'}, core.KeyUp},
		{"CSI delete", core.Sequence{27, '[', '3', '~'}, core.KeyDelete},
		{"CSI F5", core.Sequence{27, '[', '1', '5', '~'}, core.KeyF5},
		{"SS3 F1", core.Sequence{27, 'O', 'P'}, core.KeyF1},
		{"backtab", core.Sequence{27, '[', 'Z'}, core.KeyBackTab},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feedUntilDone(t, set, tc.input)
			m := set.Matched()
			if m == nil {
				t.Fatalf("no match for %v", tc.input)
			}
			if !m.Replacement().Equal(core.Sequence{tc.want}) {
				t.Errorf("Replacement() = %v, want %v", m.Replacement(), core.Sequence{tc.want})
			}
		})
	}
}

func TestBuildDoesNotMatchPlainEscape(t *testing.T) {
	set, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	set.Reset()
	if err := set.Feed(27, 0); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if set.GetState() != core.StillLooking {
		t.Fatalf("state after lone Esc byte = %v, want StillLooking (every trigger starts with Esc)", set.GetState())
	}
}
