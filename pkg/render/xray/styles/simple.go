package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/gatexray/pkg/fonts"
)

// Simple draws flat rounded rectangles with centered glyphs.
type Simple struct{}

func (Simple) Name() string { return StyleSimple }

func (Simple) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>.gate-glyph { font-family: %s; }</style>\n", fonts.SansFamily)
}

func (Simple) RenderBackground(buf *bytes.Buffer, f Frame) {
	fmt.Fprintf(buf, `  <rect class="grid" x="0" y="0" width="%.2f" height="%.2f" rx="%g" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		f.W, f.H, FrameRadius, BackgroundFill, BackgroundStroke)
}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect id="%s" class="block" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%g" fill="%s">`,
		EscapeXML(b.ID), b.X, b.Y, b.W, b.H, BlockRadius, EscapeXML(b.Fill))
	WriteTitle(buf, b.Label)
	buf.WriteString("</rect>\n")
}

func (Simple) RenderIcon(buf *bytes.Buffer, b Block) {
	if b.Icon == "" {
		return
	}
	if b.IconMarkup {
		WriteMarkupIcon(buf, b)
		return
	}
	fmt.Fprintf(buf, `  <text class="gate-glyph" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="%s">%s</text>`+"\n",
		b.CX, b.CY, FontSize(b), EscapeXML(b.TextColor), EscapeXML(b.Icon))
}

func (Simple) RenderOverlay(buf *bytes.Buffer, o Overlay) {
	buf.WriteString(`  <g class="overlap">` + "\n")
	fmt.Fprintf(buf, `    <rect x="0" y="0" width="%.2f" height="%.2f" rx="%g" fill="%s" fill-opacity="%g"/>`+"\n",
		o.W, o.H, FrameRadius, OverlayFill, OverlayOpacity)
	fmt.Fprintf(buf, `    <text x="%g" y="%g" font-size="%g" font-weight="bold" font-family="%s" fill="%s" opacity="%g">%s</text>`+"\n",
		o.MarkerX, o.MarkerY, MarkerFontSize, EscapeXML(fonts.MarkerFamily), MarkerFill, MarkerOpacity, EscapeXML(o.Marker))
	buf.WriteString("  </g>\n")
}
