package grid

// allNine is the bitmask with bits 0-8 set, one per cell value 1-9.
// A row, column, or block whose values OR to allNine contains every digit.
const allNine = 511

// unitMask returns a bitmask of the values present in one unit, with bit
// v-1 set for each filled value v. Blanks contribute nothing, so a complete
// duplicate-free unit masks to allNine and nothing else does.
func unitMask(unit [Size]uint8) uint16 {
	var mask uint16
	for _, v := range unit {
		if v != Empty {
			mask |= 1 << (v - 1)
		}
	}
	return mask
}

// unitDupFree reports whether the unit holds no repeated value.
// Blanks are ignored.
func unitDupFree(unit [Size]uint8) bool {
	var seen uint16
	for _, v := range unit {
		if v == Empty {
			continue
		}
		bit := uint16(1) << (v - 1)
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}

// IsSolved reports whether the grid is completely and correctly filled:
// every row, column, and block contains each value 1-9 exactly once.
// Each block is inspected once, not once per member cell.
func (g Grid) IsSolved() bool {
	for i := range Size {
		if unitMask(g.Row(i)) != allNine {
			return false
		}
		if unitMask(g.Column(i)) != allNine {
			return false
		}
	}
	for br := 0; br < Size; br += BlockSize {
		for bc := 0; bc < Size; bc += BlockSize {
			if unitMask(g.Block(Coord{Row: br, Col: bc})) != allNine {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether the filled cells are mutually consistent, that is
// no row, column, or block repeats a value. Blank cells are allowed, so a
// partially filled puzzle can be valid without being solved.
func (g Grid) IsValid() bool {
	for i := range Size {
		if !unitDupFree(g.Row(i)) || !unitDupFree(g.Column(i)) {
			return false
		}
	}
	for br := 0; br < Size; br += BlockSize {
		for bc := 0; bc < Size; bc += BlockSize {
			if !unitDupFree(g.Block(Coord{Row: br, Col: bc})) {
				return false
			}
		}
	}
	return true
}

// CandidateMask returns the bitmask of values that could legally occupy the
// cell at c, with bit v-1 set when value v appears in none of the cell's
// row, column, or block. The cell itself is expected to be blank; for a
// filled cell the mask excludes the cell's own value like any other.
// It panics if the coordinate is out of range.
func (g Grid) CandidateMask(c Coord) uint16 {
	c.mustBeInBounds()
	used := unitMask(g.Row(c.Row)) | unitMask(g.Column(c.Col)) | unitMask(g.Block(c))
	return allNine &^ used
}
