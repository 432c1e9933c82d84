package layout

import (
	"testing"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/view"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		n            int
		cell, margin float64
		want         float64
	}{
		{1, 40, 8, 40},
		{2, 40, 8, 88},
		{3, 40, 8, 136},
		{0, 40, 8, 0},
		{4, 10, 0, 40},
	}
	for _, tt := range tests {
		if got := Span(tt.n, tt.cell, tt.margin); got != tt.want {
			t.Errorf("Span(%d, %g, %g) = %g, want %g", tt.n, tt.cell, tt.margin, got, tt.want)
		}
	}
}

func TestMetricsValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Metrics
		wantErr bool
	}{
		{"defaults", DefaultMetrics(), false},
		{"no margins", Metrics{CellSize: 20}, false},
		{"zero cell", Metrics{}, true},
		{"negative margin", Metrics{CellSize: 20, MarginY: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
	if got := (Metrics{MarginX: 2}).WithDefaults(); got.CellSize != DefaultCellSize || got.MarginX != 2 {
		t.Errorf("WithDefaults() = %+v", got)
	}
}

func resolve(t *testing.T, comps ...circuit.Component) grid.Plan {
	t.Helper()
	plan, err := grid.Resolve(comps, circuit.Builtin())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return plan
}

func TestBuildSideBySide(t *testing.T) {
	plan := resolve(t,
		circuit.Component{GateID: "AND", X: 0, Y: 0},
		circuit.Component{GateID: "OR", X: 1, Y: 0},
	)
	l := Build(plan, DefaultMetrics())

	if l.FrameWidth != 88 || l.FrameHeight != 40 {
		t.Errorf("frame = %gx%g, want 88x40", l.FrameWidth, l.FrameHeight)
	}
	if !l.Background {
		t.Error("exploded layout should draw the grid background")
	}
	if l.Overlay != nil {
		t.Error("unexpected overlay")
	}
	if len(l.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2", len(l.Blocks))
	}
	if b := l.Blocks[1]; b.X != 48 || b.Y != 0 || b.W != 40 || b.H != 40 {
		t.Errorf("second block = %+v, want at 48,0 size 40x40", b)
	}
	if l.Blocks[0].GateID != "AND" || l.Blocks[0].Icon != "&" {
		t.Errorf("first block = %+v, want AND", l.Blocks[0])
	}
}

func TestBuildMultiCell(t *testing.T) {
	plan := resolve(t,
		circuit.Component{GateID: "MUX", X: 2, Y: 3, W: 2, H: 3},
		circuit.Component{GateID: "NOT", X: 4, Y: 5},
	)
	l := Build(plan, DefaultMetrics())

	if l.FrameWidth != 136 || l.FrameHeight != 136 {
		t.Errorf("frame = %gx%g, want 136x136", l.FrameWidth, l.FrameHeight)
	}
	mux := l.Blocks[0]
	if mux.X != 0 || mux.Y != 0 || mux.W != 88 || mux.H != 136 {
		t.Errorf("MUX block = %+v, want 0,0 88x136", mux)
	}
	not := l.Blocks[1]
	if not.X != 96 || not.Y != 96 {
		t.Errorf("NOT block at %g,%g, want 96,96", not.X, not.Y)
	}
	if not.CenterX() != 116 || not.CenterY() != 116 {
		t.Errorf("NOT center = %g,%g, want 116,116", not.CenterX(), not.CenterY())
	}
}

func TestBuildOverlap(t *testing.T) {
	plan := resolve(t,
		circuit.Component{GateID: "AND", X: 0, Y: 0, W: 2, H: 2},
		circuit.Component{GateID: "OR", X: 1, Y: 1},
		circuit.Component{GateID: "???", X: 0, Y: 1},
	)
	l := Build(plan, DefaultMetrics())

	if l.Overlay == nil {
		t.Fatal("Overlay = nil, want overlay")
	}
	if l.Overlay.W != l.FrameWidth || l.Overlay.H != l.FrameHeight {
		t.Errorf("overlay %gx%g does not cover frame %gx%g", l.Overlay.W, l.Overlay.H, l.FrameWidth, l.FrameHeight)
	}
	if l.Overlay.MarkerX != 10 || l.Overlay.MarkerY != 30 || l.Overlay.Marker != grid.OverlapMarker {
		t.Errorf("marker = %+v", l.Overlay)
	}
	if len(l.Skipped) != 1 || l.Skipped[0] != 2 {
		t.Errorf("Skipped = %v, want [2]", l.Skipped)
	}
	if len(l.Conflicts) == 0 {
		t.Error("Conflicts should list the shared cells")
	}
}

func TestBuildEmpty(t *testing.T) {
	l := Build(grid.Plan{}, DefaultMetrics())
	if !l.IsEmpty() {
		t.Errorf("Build(empty) = %+v, want empty", l)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name  string
		op    circuit.Operator
		wantH float64
	}{
		{"one row", circuit.Operator{Title: "AND", Height: 1}, 40},
		{"three rows", circuit.Operator{Title: "ADD", Height: 3}, 136},
		{"default height", circuit.Operator{Title: "BUF"}, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Compact(tt.op, DefaultMetrics())
			if l.FrameWidth != 40 || l.FrameHeight != tt.wantH {
				t.Errorf("frame = %gx%g, want 40x%g", l.FrameWidth, l.FrameHeight, tt.wantH)
			}
			if len(l.Blocks) != 1 || l.Blocks[0].H != tt.wantH {
				t.Errorf("Blocks = %+v", l.Blocks)
			}
			if l.Background || l.Overlay != nil {
				t.Error("compact layout draws no grid decoration")
			}
			if l.Blocks[0].Fill != circuit.DefaultFill {
				t.Errorf("fill = %q, want default", l.Blocks[0].Fill)
			}
		})
	}
}

func TestFromFrame(t *testing.T) {
	op := circuit.Operator{
		Title:  "Latch",
		Height: 2,
		Custom: true,
		Components: []circuit.Component{
			{GateID: "NOR", X: 0, Y: 0},
			{GateID: "NOR", X: 0, Y: 1},
		},
	}

	for _, mode := range view.Modes {
		f, err := view.Derive(op, mode, circuit.Builtin())
		if err != nil {
			t.Fatalf("Derive(%v) error = %v", mode, err)
		}
		l := FromFrame(f, DefaultMetrics())
		if l.Mode != mode {
			t.Errorf("Mode = %v, want %v", l.Mode, mode)
		}
		if l.Title != "Latch" {
			t.Errorf("Title = %q", l.Title)
		}
		if l.FrameHeight != 88 {
			t.Errorf("%v height = %g, want 88", mode, l.FrameHeight)
		}
	}

	empty, _ := view.Derive(circuit.Operator{Custom: true}, view.Exploded, circuit.Builtin())
	if l := FromFrame(empty, DefaultMetrics()); !l.IsEmpty() {
		t.Errorf("empty exploded frame gave %+v", l)
	}
}
