package grid

import (
	"cmp"
	"slices"

	"github.com/matzehuels/gatexray/pkg/circuit"
)

// Occupancy maps grid cells to the components covering them.
type Occupancy struct {
	owner   map[Cell]int
	claims  map[int]map[int]int // row -> column -> number of claims
	overlap bool
}

// Occupy builds the occupancy of comps. The lookup is last-write-wins in
// input order; the claim counts record every write and drive overlap
// detection. The whole set is always scanned. Work is proportional to the
// cells claimed, so comps should have passed [Bounds].
func Occupy(comps []circuit.Component) Occupancy {
	occ := Occupancy{
		owner:  make(map[Cell]int),
		claims: make(map[int]map[int]int),
	}

	for idx, c := range comps {
		w, h := c.Size()
		for dx := 0; dx < w; dx++ {
			for dy := 0; dy < h; dy++ {
				occ.owner[Cell{X: c.X + dx, Y: c.Y + dy}] = idx
			}
		}
	}

	for _, c := range comps {
		w, h := c.Size()
		for dy := 0; dy < h; dy++ {
			row := c.Y + dy
			cols, ok := occ.claims[row]
			if !ok {
				cols = make(map[int]int)
				occ.claims[row] = cols
			}
			for dx := 0; dx < w; dx++ {
				col := c.X + dx
				if cols[col] > 0 {
					occ.overlap = true
				}
				cols[col]++
			}
		}
	}

	return occ
}

// Owner returns the index of the last component written to c.
func (o Occupancy) Owner(c Cell) (int, bool) {
	idx, ok := o.owner[c]
	return idx, ok
}

// Overlap reports whether any cell is claimed by more than one component.
func (o Occupancy) Overlap() bool { return o.overlap }

// Claims returns how many components cover c.
func (o Occupancy) Claims(c Cell) int {
	return o.claims[c.Y][c.X]
}

// Len returns the number of occupied cells.
func (o Occupancy) Len() int { return len(o.owner) }

// Conflicts returns every cell claimed more than once, row-major.
func (o Occupancy) Conflicts() []Cell {
	var out []Cell
	for row, cols := range o.claims {
		for col, n := range cols {
			if n > 1 {
				out = append(out, Cell{X: col, Y: row})
			}
		}
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// OverlappingPairs returns every unordered pair of component indices whose
// footprints share at least one cell, sorted. Like [Occupy] it expects
// comps that passed [Bounds].
func OverlappingPairs(comps []circuit.Component) [][2]int {
	cover := make(map[Cell][]int)
	for idx, c := range comps {
		w, h := c.Size()
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				cell := Cell{X: c.X + dx, Y: c.Y + dy}
				cover[cell] = append(cover[cell], idx)
			}
		}
	}

	seen := make(map[[2]int]bool)
	var pairs [][2]int
	for _, idxs := range cover {
		for i := 0; i < len(idxs); i++ {
			for j := i + 1; j < len(idxs); j++ {
				p := [2]int{idxs[i], idxs[j]}
				if !seen[p] {
					seen[p] = true
					pairs = append(pairs, p)
				}
			}
		}
	}
	slices.SortFunc(pairs, func(a, b [2]int) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	return pairs
}
