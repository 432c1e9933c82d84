package circuit

import (
	"fmt"

	"github.com/matzehuels/gatexray/pkg/errors"
)

// Component is a placed sub-gate instance inside a composite operator.
// X and Y address its top-left grid cell. W and H are spans in cells; zero
// means absent and is read as 1.
type Component struct {
	GateID string `json:"gateId" toml:"gateId" yaml:"gateId" bson:"gate_id"`
	X      int    `json:"x" toml:"x" yaml:"x" bson:"x"`
	Y      int    `json:"y" toml:"y" yaml:"y" bson:"y"`
	W      int    `json:"w,omitempty" toml:"w,omitempty" yaml:"w,omitempty" bson:"w,omitempty"`
	H      int    `json:"h,omitempty" toml:"h,omitempty" yaml:"h,omitempty" bson:"h,omitempty"`
}

// Size returns the footprint in cells with absent spans defaulted to 1.
func (c Component) Size() (w, h int) {
	w, h = c.W, c.H
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return w, h
}

// Right returns the last occupied column.
func (c Component) Right() int {
	w, _ := c.Size()
	return c.X + w - 1
}

// Bottom returns the last occupied row.
func (c Component) Bottom() int {
	_, h := c.Size()
	return c.Y + h - 1
}

// Anchored reports whether (x, y) is the component's top-left cell.
func (c Component) Anchored(x, y int) bool {
	return c.X == x && c.Y == y
}

// Validate checks the gate id and the footprint.
func (c Component) Validate() error {
	if err := errors.ValidateGateID(c.GateID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidComponent, err, "component at (%d,%d)", c.X, c.Y)
	}
	return c.CheckFootprint()
}

// CheckFootprint checks that the spans are within [errors.MaxSpan] and that
// Right and Bottom do not overflow.
func (c Component) CheckFootprint() error {
	if err := errors.ValidateSpan("w", c.W); err != nil {
		return err
	}
	if err := errors.ValidateSpan("h", c.H); err != nil {
		return err
	}
	w, h := c.Size()
	if err := errors.ValidateExtent("x", c.X, w); err != nil {
		return err
	}
	return errors.ValidateExtent("y", c.Y, h)
}

// Cells returns the number of cells the component covers.
func (c Component) Cells() int {
	w, h := c.Size()
	return w * h
}

func (c Component) String() string {
	w, h := c.Size()
	return fmt.Sprintf("%s@(%d,%d) %dx%d", c.GateID, c.X, c.Y, w, h)
}
