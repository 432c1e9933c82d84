package layout

import (
	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/view"
)

// Marker placement inside the overlay, from the frame's top-left.
const (
	MarkerX = 10.0
	MarkerY = 30.0
)

// Block is one drawn rectangle.
type Block struct {
	Index      int     `json:"index"`
	GateID     string  `json:"gate_id,omitempty"`
	Title      string  `json:"title"`
	Fill       string  `json:"fill"`
	Icon       string  `json:"icon,omitempty"`
	IconMarkup bool    `json:"icon_markup,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"width"`
	H          float64 `json:"height"`
}

// CenterX returns the horizontal center of the block.
func (b Block) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the block.
func (b Block) CenterY() float64 { return b.Y + b.H/2 }

// Overlay is the translucent warning drawn over the whole frame.
type Overlay struct {
	W       float64 `json:"width"`
	H       float64 `json:"height"`
	Marker  string  `json:"marker"`
	MarkerX float64 `json:"marker_x"`
	MarkerY float64 `json:"marker_y"`
}

// Layout is the pixel geometry of one frame.
type Layout struct {
	Mode        view.Mode   `json:"mode"`
	Title       string      `json:"title,omitempty"`
	Metrics     Metrics     `json:"metrics"`
	FrameWidth  float64     `json:"width"`
	FrameHeight float64     `json:"height"`
	Background  bool        `json:"background,omitempty"`
	Blocks      []Block     `json:"blocks"`
	Overlay     *Overlay    `json:"overlay,omitempty"`
	Skipped     []int       `json:"skipped,omitempty"`
	Conflicts   []grid.Cell `json:"conflicts,omitempty"`
}

// IsEmpty reports whether there is nothing to draw.
func (l Layout) IsEmpty() bool {
	return l.FrameWidth == 0 && l.FrameHeight == 0 && len(l.Blocks) == 0
}

// Build lays out an exploded plan. An empty plan gives a zero Layout.
func Build(plan grid.Plan, m Metrics) Layout {
	if plan.Empty() {
		return Layout{Mode: view.Exploded, Metrics: m}
	}

	l := Layout{
		Mode:        view.Exploded,
		Metrics:     m,
		FrameWidth:  Span(plan.Box.Cols(), m.CellSize, m.MarginX),
		FrameHeight: Span(plan.Box.Rows(), m.CellSize, m.MarginY),
		Background:  true,
		Blocks:      make([]Block, 0, len(plan.Entries)),
		Conflicts:   plan.Conflicts,
	}

	for _, e := range plan.Entries {
		w, h := e.Component.Size()
		l.Blocks = append(l.Blocks, Block{
			Index:      e.Index,
			GateID:     e.Gate.ID,
			Title:      e.Gate.Title,
			Fill:       e.Gate.Fill,
			Icon:       e.Gate.Icon,
			IconMarkup: e.Gate.IconIsMarkup(),
			X:          float64(e.GridX) * m.StepX(),
			Y:          float64(e.GridY) * m.StepY(),
			W:          Span(w, m.CellSize, m.MarginX),
			H:          Span(h, m.CellSize, m.MarginY),
		})
	}
	for _, s := range plan.Skipped {
		l.Skipped = append(l.Skipped, s.Index)
	}

	if plan.Overlay != nil {
		l.Overlay = &Overlay{
			W:       l.FrameWidth,
			H:       l.FrameHeight,
			Marker:  plan.Overlay.Marker,
			MarkerX: MarkerX,
			MarkerY: MarkerY,
		}
	}
	return l
}

// Compact lays out the operator's own symbol: one cell wide and spanning
// its rows.
func Compact(op circuit.Operator, m Metrics) Layout {
	h := Span(op.Rows(), m.CellSize, m.MarginY)
	fill := op.Fill
	if fill == "" {
		fill = circuit.DefaultFill
	}
	return Layout{
		Mode:        view.Compact,
		Title:       op.Title,
		Metrics:     m,
		FrameWidth:  m.CellSize,
		FrameHeight: h,
		Blocks: []Block{{
			Title:      op.Title,
			Fill:       fill,
			Icon:       op.Symbol,
			IconMarkup: len(op.Symbol) > 0 && op.Symbol[0] == '<',
			W:          m.CellSize,
			H:          h,
		}},
	}
}

// FromFrame lays out f in whichever mode it carries.
func FromFrame(f view.Frame, m Metrics) Layout {
	if f.Mode != view.Exploded {
		return Compact(f.Operator, m)
	}
	if f.Plan == nil {
		return Layout{Mode: view.Exploded, Title: f.Operator.Title, Metrics: m}
	}
	l := Build(*f.Plan, m)
	l.Title = f.Operator.Title
	return l
}
