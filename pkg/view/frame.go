package view

import (
	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
)

// Frame is everything needed to draw one operator in one mode.
type Frame struct {
	Mode     Mode             `json:"mode"`
	Operator circuit.Operator `json:"operator"`
	// Plan is set for exploded frames with at least one component.
	Plan *grid.Plan `json:"plan,omitempty"`
}

// Empty reports whether the frame draws nothing. This is the case for an
// exploded operator without components.
func (f Frame) Empty() bool {
	return f.Mode == Exploded && (f.Plan == nil || f.Plan.Empty())
}

// Overlap reports whether the exploded grid has overlapping components.
func (f Frame) Overlap() bool {
	return f.Plan != nil && f.Plan.Overlap
}

// Derive computes the frame for op in mode. Exploded on an operator that is
// not custom falls back to Compact. An exploded operator with no components
// yields an empty frame rather than an error.
func Derive(op circuit.Operator, mode Mode, cat grid.Catalog) (Frame, error) {
	if mode != Exploded || !op.Explodable() {
		return Frame{Mode: Compact, Operator: op}, nil
	}

	f := Frame{Mode: Exploded, Operator: op}
	if len(op.Components) == 0 {
		return f, nil
	}

	plan, err := grid.Resolve(op.Components, cat)
	if err != nil {
		return Frame{}, err
	}
	f.Plan = &plan
	return f, nil
}

// DeriveState is Derive with the mode taken from s.
func DeriveState(op circuit.Operator, s *State, cat grid.Catalog) (Frame, error) {
	return Derive(op, s.Mode(), cat)
}
