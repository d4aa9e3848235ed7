package core

import "testing"

func TestSequenceEqual(t *testing.T) {
	a := Sequence{1, 2, 3}
	b := Sequence{1, 2, 3}
	c := Sequence{1, 2}
	d := Sequence{1, 2, 4}

	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %v to not equal %v (different length)", a, c)
	}
	if a.Equal(d) {
		t.Errorf("expected %v to not equal %v (different element)", a, d)
	}
}

func TestSequenceCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b Sequence
		want int
	}{
		{"equal", Sequence{1, 2}, Sequence{1, 2}, 0},
		{"prefix sorts first", Sequence{1, 2}, Sequence{1, 2, 3}, -1},
		{"prefix sorts first, reversed", Sequence{1, 2, 3}, Sequence{1, 2}, 1},
		{"lexicographic", Sequence{1, 2}, Sequence{1, 3}, -1},
		{"lexicographic, reversed", Sequence{1, 3}, Sequence{1, 2}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Compare(tc.b)
			if (got < 0) != (tc.want < 0) || (got > 0) != (tc.want > 0) || (got == 0) != (tc.want == 0) {
				t.Errorf("%v.Compare(%v) = %d, want sign %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSequenceString(t *testing.T) {
	s := Sequence{'a', 27, 1, KeyUp}
	got := s.String()
	want := "a<Esc><C-a><Up>"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
