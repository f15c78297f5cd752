package solver

import "nineblock.dev/sudoku/internal/grid"

// Frontier is the worklist of a depth-first Sudoku search. It holds every
// grid still waiting to be explored, with the current branch at the top of
// the stack. Because grids are immutable values, frontier entries share
// nothing and there is no undo step: abandoning a branch is simply popping.
//
// The zero value is an exhausted frontier. Frontier is not safe for
// concurrent use.
type Frontier struct {
	grids []grid.Grid
}

// NewFrontier returns a frontier holding just the starting grid.
func NewFrontier(g grid.Grid) *Frontier {
	return &Frontier{grids: []grid.Grid{g}}
}

// Len returns the number of grids waiting on the frontier.
func (f *Frontier) Len() int {
	return len(f.grids)
}

// Head returns the grid on top of the stack, the one the next Expand call
// will branch on. The second result is false when the frontier is exhausted.
func (f *Frontier) Head() (grid.Grid, bool) {
	if len(f.grids) == 0 {
		return grid.Grid{}, false
	}
	return f.grids[len(f.grids)-1], true
}

func (f *Frontier) pop() grid.Grid {
	g := f.grids[len(f.grids)-1]
	f.grids = f.grids[:len(f.grids)-1]
	return g
}

// Expand performs one search step: it pops the head grid, picks its blank
// cell with the fewest legal values (first in row-major order on a tie), and
// pushes one successor per legal value. A cell with no legal value produces
// no successors, so a contradicted branch silently disappears. Successors
// are pushed so that the smallest value ends up on top and is explored
// first, which keeps the search fully deterministic.
//
// A grid with no blank cells also produces no successors. Callers that care
// whether such a head was actually a solution must test it with IsSolved
// before expanding; see Next.
//
// Expand reports false when the frontier was already exhausted.
func (f *Frontier) Expand() bool {
	if len(f.grids) == 0 {
		return false
	}
	cur := f.pop()

	cands := Candidates(cur)
	if len(cands) == 0 {
		return true
	}

	pick := cands[0]
	for _, cand := range cands[1:] {
		if pick.Count() == 0 {
			break
		}
		if cand.Count() < pick.Count() {
			pick = cand
		}
	}

	// Push in descending value order so ascending order comes off the stack.
	for v := uint8(grid.Size); v >= 1; v-- {
		if pick.mask&(1<<(v-1)) != 0 {
			f.grids = append(f.grids, cur.With(pick.Cell, v))
		}
	}
	return true
}

// Next runs the search until it reaches the next solution, which it pops and
// returns. Calling Next again resumes with the remaining branches, so
// repeated calls enumerate every completion of the starting grid exactly
// once, in deterministic order. The second result is false once the frontier
// is exhausted.
//
// Full grids are judged directly and never expanded: a solved head is
// returned, a full-but-inconsistent head is dropped.
func (f *Frontier) Next() (grid.Grid, bool) {
	for len(f.grids) > 0 {
		head := f.grids[len(f.grids)-1]
		if head.Blanks() == 0 {
			f.pop()
			if head.IsSolved() {
				return head, true
			}
			continue
		}
		f.Expand()
	}
	return grid.Grid{}, false
}
