package solver

import (
	"math/bits"

	"nineblock.dev/sudoku/internal/grid"
)

// Candidate pairs a blank cell with the set of values that could legally
// occupy it, encoded as a 9-bit mask (bit v-1 set means value v is legal).
// A Candidate with an empty set marks a dead end: the cell can never be
// filled on this branch.
type Candidate struct {
	Cell grid.Coord
	mask uint16
}

// Count returns the number of legal values for the cell.
func (c Candidate) Count() int {
	return bits.OnesCount16(c.mask)
}

// Values returns the legal values in ascending order.
func (c Candidate) Values() []uint8 {
	vals := make([]uint8, 0, c.Count())
	for v := uint8(1); v <= grid.Size; v++ {
		if c.mask&(1<<(v-1)) != 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

// Candidates returns one Candidate per blank cell of g, in row-major order.
// Filled cells never appear. Blank cells with no legal value are kept, since
// spotting them is exactly how the search recognizes a dead branch.
//
// The grid is treated as trusted input: values above 9 are rejected by the
// grid constructors, so no re-validation happens here.
func Candidates(g grid.Grid) []Candidate {
	out := make([]Candidate, 0, g.Blanks())
	for r := range grid.Size {
		for c := range grid.Size {
			cell := grid.Coord{Row: r, Col: c}
			if g.At(cell) != grid.Empty {
				continue
			}
			out = append(out, Candidate{Cell: cell, mask: g.CandidateMask(cell)})
		}
	}
	return out
}
