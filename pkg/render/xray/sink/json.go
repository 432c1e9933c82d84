package sink

import (
	"encoding/json"

	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
	"github.com/matzehuels/gatexray/pkg/view"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
	seed  uint64
}

// WithJSONStyle records the style name (e.g., "simple", "handdrawn") in the
// output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the hand-drawn seed.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	Mode      view.Mode    `json:"mode"`
	Title     string       `json:"title,omitempty"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	CellSize  float64      `json:"cell_size"`
	MarginX   float64      `json:"margin_x"`
	MarginY   float64      `json:"margin_y"`
	Style     string       `json:"style,omitempty"`
	Seed      uint64       `json:"seed,omitempty"`
	Empty     bool         `json:"empty,omitempty"`
	Overlap   bool         `json:"overlap"`
	Blocks    []jsonBlock  `json:"blocks"`
	Overlay   *jsonOverlay `json:"overlay,omitempty"`
	Skipped   []int        `json:"skipped,omitempty"`
	Conflicts []grid.Cell  `json:"conflicts,omitempty"`
}

type jsonBlock struct {
	ID     string  `json:"id"`
	Index  int     `json:"index"`
	GateID string  `json:"gate_id,omitempty"`
	Title  string  `json:"title"`
	Fill   string  `json:"fill"`
	Icon   string  `json:"icon,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonOverlay struct {
	Marker  string  `json:"marker"`
	MarkerX float64 `json:"marker_x"`
	MarkerY float64 `json:"marker_y"`
}

// RenderJSON serializes the layout geometry.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Mode:      l.Mode,
		Title:     l.Title,
		Width:     l.FrameWidth,
		Height:    l.FrameHeight,
		CellSize:  l.Metrics.CellSize,
		MarginX:   l.Metrics.MarginX,
		MarginY:   l.Metrics.MarginY,
		Style:     r.style,
		Seed:      r.seed,
		Empty:     l.IsEmpty(),
		Overlap:   l.Overlay != nil,
		Blocks:    make([]jsonBlock, 0, len(l.Blocks)),
		Skipped:   l.Skipped,
		Conflicts: l.Conflicts,
	}
	for _, b := range l.Blocks {
		out.Blocks = append(out.Blocks, jsonBlock{
			ID:     blockID(l, b),
			Index:  b.Index,
			GateID: b.GateID,
			Title:  b.Title,
			Fill:   b.Fill,
			Icon:   b.Icon,
			X:      b.X,
			Y:      b.Y,
			Width:  b.W,
			Height: b.H,
		})
	}
	if o := l.Overlay; o != nil {
		out.Overlay = &jsonOverlay{Marker: o.Marker, MarkerX: o.MarkerX, MarkerY: o.MarkerY}
	}
	return json.MarshalIndent(out, "", "  ")
}
