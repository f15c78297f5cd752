package grid

import (
	"strings"
	"testing"
)

func TestIsSolved(t *testing.T) {
	solved := mustParse(t, solvedLine)

	if !solved.IsSolved() {
		t.Fatal("complete valid grid not recognized as solved")
	}

	tests := []struct {
		name string
		g    Grid
	}{
		{"one blank", solved.With(Coord{4, 4}, Empty)},
		{"row duplicate", solved.With(Coord{0, 0}, solved.At(Coord{0, 1}))},
		{"column duplicate", solved.With(Coord{0, 0}, solved.At(Coord{1, 0}))},
		{"empty grid", Grid{}},
		{"partial puzzle", mustParse(t, sampleLine)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.g.IsSolved() {
				t.Error("IsSolved() = true, want false")
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	solved := mustParse(t, solvedLine)

	tests := []struct {
		name string
		g    Grid
		want bool
	}{
		{"solved grid", solved, true},
		{"empty grid", Grid{}, true},
		{"partial puzzle", mustParse(t, sampleLine), true},
		{"solved with one blank", solved.With(Coord{7, 2}, Empty), true},
		{"row duplicate", solved.With(Coord{0, 0}, solved.At(Coord{0, 5})), false},
		{"column duplicate", solved.With(Coord{2, 3}, solved.At(Coord{8, 3})), false},
		// Rows and columns are duplicate-free here; only the block repeats.
		{"block duplicate", mustParse(t, "12......."+"21......."+strings.Repeat(".", 63)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCandidateMask(t *testing.T) {
	g := mustParse(t, sampleLine)

	// Cell (0,0): row holds {5,2}, column holds {2,8,1,9}, block holds
	// {5,2,1}, so values 3, 4, 6, and 7 remain.
	want := uint16(1<<2 | 1<<3 | 1<<5 | 1<<6)
	if got := g.CandidateMask(Coord{0, 0}); got != want {
		t.Errorf("CandidateMask(0,0) = %09b, want %09b", got, want)
	}
}

func TestCandidateMaskOnSolvedGrid(t *testing.T) {
	g := mustParse(t, solvedLine)

	for r := range Size {
		for c := range Size {
			if got := g.CandidateMask(Coord{r, c}); got != 0 {
				t.Errorf("CandidateMask(%d,%d) = %09b on a full grid, want 0", r, c, got)
			}
		}
	}
}
