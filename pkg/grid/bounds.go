package grid

import (
	"fmt"
	"iter"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
)

// Cell addresses one grid cell by column and row.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Box is an inclusive integer rectangle of cells.
type Box struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// Cols returns the box width in cells.
func (b Box) Cols() int { return b.MaxX - b.MinX + 1 }

// Rows returns the box height in cells.
func (b Box) Rows() int { return b.MaxY - b.MinY + 1 }

// contains reports whether c lies inside the box.
func (b Box) contains(c Cell) bool {
	return c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// Offset returns c relative to the box's top-left corner.
func (b Box) Offset(c Cell) (dx, dy int) {
	return c.X - b.MinX, c.Y - b.MinY
}

// Cells yields every cell of the box in row-major order. Iteration runs over
// offsets so a box touching math.MaxInt still terminates.
func (b Box) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		cols, rows := b.Cols(), b.Rows()
		for dy := 0; dy < rows; dy++ {
			for dx := 0; dx < cols; dx++ {
				if !yield(Cell{X: b.MinX + dx, Y: b.MinY + dy}) {
					return
				}
			}
		}
	}
}

// extent returns the box size in cells without overflowing. A result of 0
// means the side spans the whole int range.
func (b Box) extent() (cols, rows uint64) {
	return uint64(b.MaxX) - uint64(b.MinX) + 1, uint64(b.MaxY) - uint64(b.MinY) + 1
}

// ErrEmptyComponentSet is returned by [Bounds] and [Resolve] when there is
// nothing to lay out.
var ErrEmptyComponentSet error = errors.New(errors.ErrCodeEmptyComponentSet, "no components to lay out")

// Bounds returns the smallest box containing every component's footprint,
// from (x, y) through (x+w-1, y+h-1).
//
// Footprints that overflow int, and layouts whose box or total claimed
// cells exceed [errors.MaxGridCells], are rejected. Every later stage can
// then size its work from the box.
func Bounds(comps []circuit.Component) (Box, error) {
	if len(comps) == 0 {
		return Box{}, ErrEmptyComponentSet
	}

	claimed := 0
	for i, c := range comps {
		if err := c.CheckFootprint(); err != nil {
			return Box{}, errors.Wrap(errors.GetCode(err), err, "component %d", i)
		}
		claimed += c.Cells()
		if claimed > errors.MaxGridCells {
			return Box{}, errors.New(errors.ErrCodeGridTooLarge, "components claim more than %d cells", errors.MaxGridCells)
		}
	}

	first := comps[0]
	b := Box{MinX: first.X, MaxX: first.Right(), MinY: first.Y, MaxY: first.Bottom()}
	for _, c := range comps[1:] {
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.Right())
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Bottom())
	}

	cols, rows := b.extent()
	const limit = errors.MaxGridCells
	if cols == 0 || rows == 0 || cols > limit || rows > limit || cols*rows > limit {
		return Box{}, errors.New(errors.ErrCodeGridTooLarge, "grid spans %d..%d x %d..%d, more than %d cells",
			b.MinX, b.MaxX, b.MinY, b.MaxY, limit)
	}
	return b, nil
}
