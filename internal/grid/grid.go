package grid

import (
	"fmt"
	"strings"
)

// Grid dimensions and special cell values
const (
	Size      = 9 // cells per row, column, and block
	BlockSize = 3 // side length of one block
	CellCount = Size * Size

	Empty = 0 // value of a blank cell
)

// Coord addresses a single cell. Row and Col are 0-indexed, each in [0, 9).
type Coord struct {
	Row, Col int
}

// inBounds reports whether the coordinate lies on the grid.
func (c Coord) inBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// mustBeInBounds panics on an out-of-range coordinate. Coordinates are
// produced by callers, never by input data, so a bad one is a bug.
func (c Coord) mustBeInBounds() {
	if !c.inBounds() {
		panic(fmt.Sprintf("grid: coordinate (%d,%d) out of range [0,%d)", c.Row, c.Col, Size))
	}
}

// Grid is a 9x9 Sudoku position. The zero value is an entirely blank grid.
//
// Grid is a value type: methods never mutate the receiver, and every
// transformation returns a fresh copy. Two grids never share state, so they
// may be stored, compared with ==, and passed around freely.
type Grid struct {
	cells [Size][Size]uint8
}

// Parse builds a Grid from an 81-cell string in row-major order.
// Use '.' or '0' for blank cells, '1'-'9' for filled cells.
// ASCII whitespace (spaces, tabs, newlines) is ignored, so both the flat
// one-line form and a nine-line layout are accepted.
func Parse(s string) (Grid, error) {
	var g Grid
	pos := 0
	for _, ch := range []byte(s) {
		switch ch {
		case ' ', '\t', '\r', '\n':
			continue
		case '.', '0':
			// Blank cell, already zero
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if pos < CellCount {
				g.cells[pos/Size][pos%Size] = ch - '0'
			}
		default:
			return Grid{}, fmt.Errorf("invalid character %q at cell %d", ch, pos)
		}
		pos++
	}
	if pos != CellCount {
		return Grid{}, fmt.Errorf("puzzle must have exactly %d cells, got %d", CellCount, pos)
	}
	return g, nil
}

// FromCells builds a Grid from a raw cell array, rejecting values above 9.
// Dimension errors are impossible by construction; value-range checking here
// is the only well-formedness test the solver relies on.
func FromCells(cells [Size][Size]uint8) (Grid, error) {
	for r := range Size {
		for c := range Size {
			if cells[r][c] > Size {
				return Grid{}, fmt.Errorf("cell (%d,%d) holds %d, want 0-%d", r, c, cells[r][c], Size)
			}
		}
	}
	return Grid{cells: cells}, nil
}

// At returns the value stored at the given coordinate.
// It panics if the coordinate is out of range.
func (g Grid) At(c Coord) uint8 {
	c.mustBeInBounds()
	return g.cells[c.Row][c.Col]
}

// With returns a copy of the grid with the cell at the given coordinate
// overwritten. The receiver is unchanged. Values run 0 (blank) through 9;
// With does not check Sudoku legality — placing a conflicting value is
// allowed and simply yields a grid that can never pass IsSolved.
// It panics on an out-of-range coordinate or value.
func (g Grid) With(c Coord, v uint8) Grid {
	c.mustBeInBounds()
	if v > Size {
		panic(fmt.Sprintf("grid: value %d out of range [0,%d]", v, Size))
	}
	g.cells[c.Row][c.Col] = v
	return g
}

// Row returns the nine values of row r, left to right.
func (g Grid) Row(r int) [Size]uint8 {
	return g.cells[r]
}

// Column returns the nine values of column c, top to bottom.
func (g Grid) Column(c int) [Size]uint8 {
	var col [Size]uint8
	for r := range Size {
		col[r] = g.cells[r][c]
	}
	return col
}

// Block returns the nine values of the 3x3 block containing the given
// coordinate, in row-major order within the block. All nine coordinates of
// a block map to the identical sequence.
func (g Grid) Block(c Coord) [Size]uint8 {
	c.mustBeInBounds()
	br := c.Row / BlockSize * BlockSize
	bc := c.Col / BlockSize * BlockSize

	var blk [Size]uint8
	for i := range Size {
		blk[i] = g.cells[br+i/BlockSize][bc+i%BlockSize]
	}
	return blk
}

// BlockIndex returns the block number (0-8, row-major) containing the
// coordinate. Blocks are derived from position, never stored.
func BlockIndex(c Coord) int {
	c.mustBeInBounds()
	return c.Row/BlockSize*BlockSize + c.Col/BlockSize
}

// Blanks returns the number of empty cells.
func (g Grid) Blanks() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g.cells[r][c] == Empty {
				n++
			}
		}
	}
	return n
}

// String returns the grid as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for r := range Size {
		for c := range Size {
			if v := g.cells[r][c]; v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with block lines.
func (g Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for r := range Size {
		sb.WriteString("| ")
		for c := range Size {
			if v := g.cells[r][c]; v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			sb.WriteByte(' ')

			if (c+1)%BlockSize == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (r+1)%BlockSize == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
