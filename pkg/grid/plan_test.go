package grid

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
)

var testCatalog = circuit.MustCatalog(
	circuit.GateType{ID: "X", Fill: "#ffcc00", Icon: "X"},
	circuit.GateType{ID: "Y", Fill: "#00ccff", Icon: "Y"},
	circuit.GateType{ID: "Z", Fill: "#cccccc"},
)

func entryIndices(p Plan) []int {
	out := make([]int, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Index
	}
	return out
}

func TestResolveSideBySide(t *testing.T) {
	comps := []circuit.Component{
		{GateID: "X", X: 0, Y: 0, W: 1, H: 1},
		{GateID: "Y", X: 1, Y: 0, W: 1, H: 1},
	}
	plan, err := Resolve(comps, testCatalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if want := (Box{MinX: 0, MaxX: 1, MinY: 0, MaxY: 0}); plan.Box != want {
		t.Errorf("Box = %+v, want %+v", plan.Box, want)
	}
	if plan.Overlap || plan.Overlay != nil {
		t.Errorf("Overlap = %v, Overlay = %v, want none", plan.Overlap, plan.Overlay)
	}
	if len(plan.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(plan.Entries))
	}
	if e := plan.Entries[0]; e.GridX != 0 || e.GridY != 0 || e.Gate.ID != "X" {
		t.Errorf("Entries[0] = %+v, want X at 0,0", e)
	}
	if e := plan.Entries[1]; e.GridX != 1 || e.GridY != 0 || e.Gate.Fill != "#00ccff" {
		t.Errorf("Entries[1] = %+v, want Y at 1,0", e)
	}
}

func TestResolveOverlap(t *testing.T) {
	comps := []circuit.Component{
		{GateID: "X", X: 0, Y: 0, W: 2, H: 2},
		{GateID: "Y", X: 1, Y: 1, W: 1, H: 1},
	}
	plan, err := Resolve(comps, testCatalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if want := (Box{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}); plan.Box != want {
		t.Errorf("Box = %+v, want %+v", plan.Box, want)
	}
	if !plan.Overlap {
		t.Error("Overlap = false, want true")
	}
	if plan.Overlay == nil || plan.Overlay.Marker != OverlapMarker || plan.Overlay.Box != plan.Box {
		t.Errorf("Overlay = %+v, want marker over box", plan.Overlay)
	}
	if got := entryIndices(plan); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("entry order = %v, want [0 1]", got)
	}
	if got := plan.Conflicts; !slices.Equal(got, []Cell{{1, 1}}) {
		t.Errorf("Conflicts = %v, want [(1,1)]", got)
	}
}

func TestResolveEmpty(t *testing.T) {
	plan, err := Resolve(nil, testCatalog)
	if err != ErrEmptyComponentSet {
		t.Fatalf("Resolve(nil) error = %v, want ErrEmptyComponentSet", err)
	}
	if !plan.Empty() {
		t.Errorf("plan = %+v, want empty", plan)
	}
}

func TestResolveUnknownGate(t *testing.T) {
	comps := []circuit.Component{
		{GateID: "X", X: 0, Y: 0},
		{GateID: "UNKNOWN", X: 0, Y: 0},
	}
	plan, err := Resolve(comps, testCatalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got := entryIndices(plan); !slices.Equal(got, []int{0}) {
		t.Errorf("entries = %v, want [0]", got)
	}
	if len(plan.Skipped) != 1 || plan.Skipped[0].GateID != "UNKNOWN" {
		t.Fatalf("Skipped = %+v, want UNKNOWN", plan.Skipped)
	}
	if !errors.Is(plan.Skipped[0].Err, errors.ErrCodeUnknownGateType) {
		t.Errorf("skip error code = %q", errors.GetCode(plan.Skipped[0].Err))
	}
	// Unknown components still take part in overlap detection.
	if !plan.Overlap {
		t.Error("Overlap = false, want true")
	}
}

func TestResolveWideComponentDrawnOnce(t *testing.T) {
	comps := []circuit.Component{
		{GateID: "X", X: 0, Y: 0, W: 2, H: 1},
	}
	plan, err := Resolve(comps, testCatalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(plan.Entries) != 1 {
		t.Errorf("len(Entries) = %d, want 1", len(plan.Entries))
	}
	if plan.Box.Cols() != 2 {
		t.Errorf("Box.Cols() = %d, want 2", plan.Box.Cols())
	}
}

func TestResolveDisplacedAnchor(t *testing.T) {
	// Y covers X's top-left cell, so X no longer owns its anchor.
	comps := []circuit.Component{
		{GateID: "X", X: 1, Y: 1, W: 2, H: 2},
		{GateID: "Y", X: 0, Y: 0, W: 2, H: 2},
	}
	plan, err := Resolve(comps, testCatalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !plan.Overlap {
		t.Error("Overlap = false, want true")
	}
	if got := entryIndices(plan); !slices.Equal(got, []int{1, 0}) {
		t.Errorf("entries = %v, want [1 0] in row-major anchor order", got)
	}
	if e := plan.Entries[1]; e.GridX != 1 || e.GridY != 1 {
		t.Errorf("displaced entry at %d,%d, want 1,1", e.GridX, e.GridY)
	}
}

func TestResolveSharedAnchorKeepsInputOrder(t *testing.T) {
	comps := []circuit.Component{
		{GateID: "X", X: 2, Y: 2},
		{GateID: "Y", X: 2, Y: 2},
		{GateID: "Z", X: 2, Y: 2},
	}
	plan, err := Resolve(comps, testCatalog)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got := entryIndices(plan); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("entries = %v, want [0 1 2]", got)
	}
}

func TestResolveNegativeSpan(t *testing.T) {
	tests := []struct {
		name string
		comp circuit.Component
	}{
		{"negative w", circuit.Component{GateID: "X", W: -1}},
		{"negative h", circuit.Component{GateID: "X", H: -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve([]circuit.Component{tt.comp}, testCatalog)
			if !errors.Is(err, errors.ErrCodeInvalidComponent) {
				t.Errorf("Resolve() error = %v, want INVALID_COMPONENT", err)
			}
		})
	}
}

func TestResolveIntegerEdges(t *testing.T) {
	tests := []struct {
		name  string
		comps []circuit.Component
		grid  [][2]int
	}{
		{"max int corner", []circuit.Component{{GateID: "X", X: math.MaxInt, Y: math.MaxInt}}, [][2]int{{0, 0}}},
		{
			name: "min int corner",
			comps: []circuit.Component{
				{GateID: "X", X: math.MinInt, Y: math.MinInt, W: 2},
				{GateID: "Y", X: math.MinInt + 1, Y: math.MinInt + 1},
			},
			grid: [][2]int{{0, 0}, {1, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Resolve(tt.comps, testCatalog)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if plan.Overlap {
				t.Error("Overlap = true, want false")
			}
			if len(plan.Entries) != len(tt.grid) {
				t.Fatalf("entries = %d, want %d", len(plan.Entries), len(tt.grid))
			}
			for i, e := range plan.Entries {
				if got := [2]int{e.GridX, e.GridY}; got != tt.grid[i] {
					t.Errorf("entry %d at %v, want %v", i, got, tt.grid[i])
				}
			}
		})
	}
}

func TestResolveOversized(t *testing.T) {
	comps := []circuit.Component{{GateID: "X", W: 4_000_000_000, H: 4_000_000_000}}
	if _, err := Resolve(comps, testCatalog); !errors.Is(err, errors.ErrCodeGridTooLarge) {
		t.Errorf("Resolve() error = %v, want GRID_TOO_LARGE", err)
	}
}

func TestResolveNilCatalogSkipsEverything(t *testing.T) {
	var cat *circuit.Catalog
	plan, err := Resolve([]circuit.Component{{GateID: "X"}, {GateID: "Y", X: 1}}, cat)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(plan.Entries) != 0 || len(plan.Skipped) != 2 {
		t.Errorf("entries=%d skipped=%d, want 0 and 2", len(plan.Entries), len(plan.Skipped))
	}
}

// Random layouts: every component is accounted for exactly once, every
// entry lies inside the box, and the overlap flag agrees with a brute-force
// pairwise check.
func TestResolveProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	ids := []string{"X", "Y", "Z", "Q"}

	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.IntN(6)
		comps := make([]circuit.Component, n)
		for i := range comps {
			comps[i] = circuit.Component{
				GateID: ids[rng.IntN(len(ids))],
				X:      rng.IntN(7) - 3,
				Y:      rng.IntN(7) - 3,
				W:      rng.IntN(3),
				H:      rng.IntN(3),
			}
		}

		plan, err := Resolve(comps, testCatalog)
		if err != nil {
			t.Fatalf("iter %d: Resolve() error = %v", iter, err)
		}

		seen := make(map[int]bool)
		for _, e := range plan.Entries {
			if seen[e.Index] {
				t.Fatalf("iter %d: component %d drawn twice", iter, e.Index)
			}
			seen[e.Index] = true
			if e.GridX < 0 || e.GridY < 0 || e.GridX >= plan.Box.Cols() || e.GridY >= plan.Box.Rows() {
				t.Fatalf("iter %d: entry %+v outside box %+v", iter, e, plan.Box)
			}
		}
		for _, s := range plan.Skipped {
			if seen[s.Index] {
				t.Fatalf("iter %d: component %d both drawn and skipped", iter, s.Index)
			}
			seen[s.Index] = true
		}
		if len(seen) != n {
			t.Fatalf("iter %d: accounted for %d of %d components", iter, len(seen), n)
		}

		wantOverlap := len(OverlappingPairs(comps)) > 0
		if plan.Overlap != wantOverlap {
			t.Fatalf("iter %d: Overlap = %v, want %v for %v", iter, plan.Overlap, wantOverlap, comps)
		}
		if (plan.Overlay != nil) != wantOverlap {
			t.Fatalf("iter %d: Overlay presence mismatch", iter)
		}
	}
}
