package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
	"github.com/matzehuels/gatexray/pkg/render/xray/styles"
	"github.com/matzehuels/gatexray/pkg/view"
)

const symbolID = "symbol"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	title      bool
	background bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTitle() SVGOption               { return func(r *svgRenderer) { r.title = true } }

// WithBackground toggles the exploded grid panel (on by default).
func WithBackground(on bool) SVGOption { return func(r *svgRenderer) { r.background = on } }

// RenderSVG renders l as a standalone SVG document. An empty layout gives
// a zero-size document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f" overflow="visible" data-mode="%s">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight, l.Mode)

	if l.IsEmpty() {
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	r.style.RenderDefs(&buf)
	if r.title && l.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(l.Title))
	}
	if l.Background && r.background {
		r.style.RenderBackground(&buf, styles.Frame{W: l.FrameWidth, H: l.FrameHeight})
	}

	blocks := buildBlocks(l)
	for _, b := range blocks {
		r.style.RenderBlock(&buf, b)
	}
	for _, b := range blocks {
		r.style.RenderIcon(&buf, b)
	}

	if o := l.Overlay; o != nil {
		r.style.RenderOverlay(&buf, styles.Overlay{
			W: o.W, H: o.H,
			Marker:  o.Marker,
			MarkerX: o.MarkerX, MarkerY: o.MarkerY,
		})
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, background: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func blockID(l layout.Layout, b layout.Block) string {
	if l.Mode == view.Compact {
		return symbolID
	}
	return "block-" + strconv.Itoa(b.Index)
}

func buildBlocks(l layout.Layout) []styles.Block {
	blocks := make([]styles.Block, 0, len(l.Blocks))
	for _, b := range l.Blocks {
		blocks = append(blocks, styles.Block{
			ID:         blockID(l, b),
			GateID:     b.GateID,
			Label:      b.Title,
			Icon:       b.Icon,
			IconMarkup: b.IconMarkup,
			Fill:       b.Fill,
			TextColor:  circuit.ContrastText(b.Fill),
			X:          b.X, Y: b.Y,
			W: b.W, H: b.H,
			CX: b.CenterX(), CY: b.CenterY(),
		})
	}
	return blocks
}
