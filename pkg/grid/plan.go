package grid

import (
	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
)

// OverlapMarker is the glyph drawn at the top-left of an invalid layout.
const OverlapMarker = "✗"

// Catalog resolves gate types by id.
type Catalog interface {
	Lookup(id string) (circuit.GateType, bool)
}

// Entry is one draw instruction: a component at its grid offset from the
// box's top-left corner, with its resolved catalog entry.
type Entry struct {
	Index     int               `json:"index"`
	Component circuit.Component `json:"component"`
	Gate      circuit.GateType  `json:"gate"`
	GridX     int               `json:"grid_x"`
	GridY     int               `json:"grid_y"`
}

// Skip records a component that has no draw entry.
type Skip struct {
	Index  int    `json:"index"`
	GateID string `json:"gate_id"`
	Err    error  `json:"-"`
}

// Overlay is the warning drawn over the whole box when components overlap.
type Overlay struct {
	Box    Box    `json:"box"`
	Marker string `json:"marker"`
}

// Plan is the ordered render instructions for an exploded view.
type Plan struct {
	Box       Box      `json:"box"`
	Entries   []Entry  `json:"entries"`
	Skipped   []Skip   `json:"skipped,omitempty"`
	Overlap   bool     `json:"overlap"`
	Overlay   *Overlay `json:"overlay,omitempty"`
	Conflicts []Cell   `json:"conflicts,omitempty"`
}

// Empty reports whether the plan covers no components at all.
func (p Plan) Empty() bool {
	return len(p.Entries) == 0 && len(p.Skipped) == 0
}

// BuildPlan scans box row-major and emits one entry per component at its
// top-left cell. occ must have been built from comps.
func BuildPlan(box Box, occ Occupancy, comps []circuit.Component, cat Catalog) Plan {
	plan := Plan{Box: box, Overlap: occ.Overlap()}

	anchors := make(map[Cell][]int, len(comps))
	for idx, c := range comps {
		cell := Cell{X: c.X, Y: c.Y}
		anchors[cell] = append(anchors[cell], idx)
	}

	emit := func(idx int, cell Cell) {
		c := comps[idx]
		gate, ok := cat.Lookup(c.GateID)
		if !ok {
			plan.Skipped = append(plan.Skipped, Skip{
				Index:  idx,
				GateID: c.GateID,
				Err:    errors.New(errors.ErrCodeUnknownGateType, "component %d: unknown gate %q", idx, c.GateID),
			})
			return
		}
		dx, dy := box.Offset(cell)
		plan.Entries = append(plan.Entries, Entry{
			Index:     idx,
			Component: c,
			Gate:      gate,
			GridX:     dx,
			GridY:     dy,
		})
	}

	for cell := range box.Cells() {
		owner, ok := occ.Owner(cell)
		if !ok {
			continue
		}
		// Components anchored here that lost the cell to a later writer.
		// Their indices are all below owner, so input order is preserved.
		for _, idx := range anchors[cell] {
			if idx != owner {
				emit(idx, cell)
			}
		}
		if comps[owner].Anchored(cell.X, cell.Y) {
			emit(owner, cell)
		}
	}

	if plan.Overlap {
		plan.Overlay = &Overlay{Box: box, Marker: OverlapMarker}
		plan.Conflicts = occ.Conflicts()
	}
	return plan
}

// Resolve runs the full exploded-view pipeline: bounds, occupancy, plan.
// Invalid footprints are rejected by [Bounds]; an empty set yields
// [ErrEmptyComponentSet].
func Resolve(comps []circuit.Component, cat Catalog) (Plan, error) {
	box, err := Bounds(comps)
	if err != nil {
		return Plan{}, err
	}
	return BuildPlan(box, Occupy(comps), comps, cat), nil
}
