package circuit

import (
	"github.com/matzehuels/gatexray/pkg/errors"
)

// Operator is a gate symbol as placed in a circuit. Custom operators are
// composites whose Components describe their internal grid.
type Operator struct {
	ID         string      `json:"id,omitempty" yaml:"id,omitempty" bson:"_id,omitempty"`
	Title      string      `json:"title" yaml:"title" bson:"title"`
	Fill       string      `json:"fill,omitempty" yaml:"fill,omitempty" bson:"fill,omitempty"`
	Width      int         `json:"width,omitempty" yaml:"width,omitempty" bson:"width,omitempty"`
	Height     int         `json:"height,omitempty" yaml:"height,omitempty" bson:"height,omitempty"`
	Custom     bool        `json:"custom,omitempty" yaml:"custom,omitempty" bson:"custom,omitempty"`
	Symbol     string      `json:"symbol,omitempty" yaml:"symbol,omitempty" bson:"symbol,omitempty"`
	Components []Component `json:"components,omitempty" yaml:"components,omitempty" bson:"components,omitempty"`
}

// Rows returns the operator's outer height in cells (default 1).
func (o Operator) Rows() int {
	if o.Height <= 0 {
		return 1
	}
	return o.Height
}

// Explodable reports whether the operator has an exploded view at all.
func (o Operator) Explodable() bool {
	return o.Custom
}

// Validate checks every component, the total claimed area and the outer
// size.
func (o Operator) Validate() error {
	if o.Height < 0 || o.Width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "operator %q: negative size", o.Title)
	}
	claimed := 0
	for i, c := range o.Components {
		if err := c.Validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "operator %q component %d", o.Title, i)
		}
		claimed += c.Cells()
		if claimed > errors.MaxGridCells {
			return errors.New(errors.ErrCodeGridTooLarge, "operator %q: components claim more than %d cells", o.Title, errors.MaxGridCells)
		}
	}
	return nil
}
