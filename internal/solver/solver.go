// Package solver finds solutions to Sudoku grids by depth-first search.
//
// The search keeps an explicit frontier of candidate grids instead of
// recursing: each step replaces the top grid with its successors, one per
// legal value of the blank cell that has the fewest. Branching on the most
// constrained cell keeps the tree narrow, and contradicted branches vanish
// on their own because a cell with no legal values contributes no
// successors. There is nothing to undo; every grid on the frontier is an
// independent immutable value.
package solver

import (
	"errors"

	"nineblock.dev/sudoku/internal/grid"
)

// ErrNoSolution is returned when a puzzle has no solution.
var ErrNoSolution = errors.New("puzzle has no solution")

// Solve returns the first solution of g found by deterministic depth-first
// search, or ErrNoSolution once every branch has been exhausted. A grid that
// is already solved comes straight back.
//
// Solve does not screen the givens for consistency: a contradictory puzzle
// simply runs out of branches. Callers wanting a diagnosis before solving
// can ask Grid.IsValid themselves.
func Solve(g grid.Grid) (grid.Grid, error) {
	if sol, ok := NewFrontier(g).Next(); ok {
		return sol, nil
	}
	return grid.Grid{}, ErrNoSolution
}
