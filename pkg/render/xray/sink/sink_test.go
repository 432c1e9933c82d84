package sink

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
	"github.com/matzehuels/gatexray/pkg/render/xray/styles"
	"github.com/matzehuels/gatexray/pkg/view"
)

var fullAdder = circuit.Operator{
	Title:  "Full adder",
	Fill:   "#fde68a",
	Height: 2,
	Custom: true,
	Symbol: "Σ",
	Components: []circuit.Component{
		{GateID: "XOR", X: 0, Y: 0},
		{GateID: "XOR", X: 1, Y: 0},
		{GateID: "AND", X: 0, Y: 1},
		{GateID: "OR", X: 1, Y: 1},
	},
}

var broken = circuit.Operator{
	Title:  "Broken",
	Custom: true,
	Components: []circuit.Component{
		{GateID: "MUX", X: 0, Y: 0, W: 2, H: 2},
		{GateID: "NOT", X: 1, Y: 1},
		{GateID: "WAT", X: 2, Y: 0},
	},
}

func frameLayout(t *testing.T, op circuit.Operator, mode view.Mode) (view.Frame, layout.Layout) {
	t.Helper()
	f, err := view.Derive(op, mode, circuit.Builtin())
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	return f, layout.FromFrame(f, layout.DefaultMetrics())
}

func TestRenderSVGExploded(t *testing.T) {
	_, l := frameLayout(t, fullAdder, view.Exploded)
	out := string(RenderSVG(l, WithTitle()))

	for _, want := range []string{
		`viewBox="0 0 88.00 88.00"`,
		`data-mode="xray"`,
		`<title>Full adder</title>`,
		`class="grid"`,
		`id="block-0"`,
		`id="block-3"`,
		`>=1</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(out, `class="overlap"`) {
		t.Error("clean layout should have no overlap overlay")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("SVG not closed")
	}
}

func TestRenderSVGDrawOrder(t *testing.T) {
	_, l := frameLayout(t, broken, view.Exploded)
	out := string(RenderSVG(l))

	bg := strings.Index(out, `class="grid"`)
	first := strings.Index(out, `id="block-0"`)
	second := strings.Index(out, `id="block-1"`)
	overlay := strings.Index(out, `class="overlap"`)
	if bg < 0 || first < 0 || second < 0 || overlay < 0 {
		t.Fatalf("missing elements: grid=%d block0=%d block1=%d overlay=%d", bg, first, second, overlay)
	}
	if !(bg < first && first < second && second < overlay) {
		t.Errorf("draw order wrong: grid=%d block0=%d block1=%d overlay=%d", bg, first, second, overlay)
	}
	if strings.Contains(out, `id="block-2"`) {
		t.Error("unknown gate should not be drawn")
	}
	if !strings.Contains(out, "✗") {
		t.Error("overlap marker missing")
	}
}

func TestRenderSVGCompact(t *testing.T) {
	_, l := frameLayout(t, fullAdder, view.Compact)
	out := string(RenderSVG(l))

	for _, want := range []string{
		`width="40" height="88"`,
		`id="symbol"`,
		`rx="4"`,
		`>Σ</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(out, `class="grid"`) {
		t.Error("compact frame should not draw the grid background")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	_, l := frameLayout(t, circuit.Operator{Custom: true}, view.Exploded)
	out := string(RenderSVG(l))
	if strings.Contains(out, "<rect") || strings.Contains(out, "<path") {
		t.Errorf("empty frame drew shapes: %s", out)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	_, l := frameLayout(t, fullAdder, view.Exploded)

	s, err := StyleByName("handdrawn", 3)
	if err != nil {
		t.Fatal(err)
	}
	out := string(RenderSVG(l, WithStyle(s), WithBackground(false)))
	if !strings.Contains(out, `filter id="pencil"`) {
		t.Error("handdrawn defs missing")
	}
	if strings.Contains(out, `class="grid"`) {
		t.Error("background should be disabled")
	}

	if _, err := StyleByName("neon", 0); err == nil {
		t.Error("StyleByName(neon) = nil error")
	}
	if s, _ := StyleByName("simple", 0); s.Name() != (styles.Simple{}).Name() {
		t.Errorf("StyleByName(simple) = %T", s)
	}
}

func TestRenderJSON(t *testing.T) {
	_, l := frameLayout(t, broken, view.Exploded)
	data, err := RenderJSON(l, WithJSONStyle("simple"))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Mode != view.Exploded || !out.Overlap || out.Style != "simple" {
		t.Errorf("header = mode %v overlap %v style %q", out.Mode, out.Overlap, out.Style)
	}
	if len(out.Blocks) != 2 {
		t.Errorf("len(Blocks) = %d, want 2", len(out.Blocks))
	}
	if len(out.Skipped) != 1 || out.Skipped[0] != 2 {
		t.Errorf("Skipped = %v, want [2]", out.Skipped)
	}
	if out.Overlay == nil || out.Overlay.Marker != grid.OverlapMarker {
		t.Errorf("Overlay = %+v", out.Overlay)
	}
	if out.CellSize != layout.DefaultCellSize {
		t.Errorf("CellSize = %g", out.CellSize)
	}
}

func TestRenderTerminal(t *testing.T) {
	f, _ := frameLayout(t, broken, view.Exploded)
	out := RenderTerminal(f.Operator.Components, *f.Plan)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2:\n%s", len(lines), out)
	}
	for _, want := range []string{"MUX", "?", grid.OverlapMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal preview missing %q:\n%s", want, out)
		}
	}
	if RenderTerminal(nil, grid.Plan{}) != "" {
		t.Error("empty plan should render nothing")
	}
}

func TestTerminalFrameCompact(t *testing.T) {
	f, _ := frameLayout(t, fullAdder, view.Compact)
	out := TerminalFrame(f)
	if n := len(strings.Split(out, "\n")); n != 2 {
		t.Errorf("compact preview has %d rows, want 2", n)
	}
	if !strings.Contains(out, "Σ") {
		t.Errorf("compact preview missing symbol:\n%s", out)
	}
}

func TestConflictDOT(t *testing.T) {
	dot := ConflictDOT(broken.Components, circuit.Builtin())
	for _, want := range []string{
		"graph G {",
		`c0 [label="MUX@(0,0) 2x2"`,
		"c0 -- c1;",
		`c2 [label="WAT@(2,0) 1x1", fillcolor="#e5e7eb", style="rounded,filled,dashed"]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "c2 --") || strings.Contains(dot, "-- c2") {
		t.Error("non-overlapping component should have no edges")
	}
}

func TestRenderConflictSVG(t *testing.T) {
	dot := ConflictDOT(broken.Components, circuit.Builtin())
	svg, err := RenderConflictSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderConflictSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="62" height="116"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
}
