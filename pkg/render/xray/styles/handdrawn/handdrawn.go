// Package handdrawn renders operator frames in a sketchy, pen-on-paper
// style. Outlines wobble deterministically: the same seed and block id
// always give the same path, so renders are reproducible and cacheable.
package handdrawn

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/gatexray/pkg/fonts"
	"github.com/matzehuels/gatexray/pkg/render/xray/styles"
)

const (
	strokeColor = "#333"
	strokeWidth = 1.6
	frameID     = "frame"
	overlayID   = "overlay"
)

// Style is the hand-drawn style.
type Style struct {
	seed uint64
}

// New returns a hand-drawn style seeded for reproducible wobble.
func New(seed uint64) *Style {
	return &Style{seed: seed}
}

func (s *Style) Name() string { return styles.StyleHanddrawn }

func (s *Style) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <filter id="pencil"><feTurbulence type="fractalNoise" baseFrequency="0.03" numOctaves="2" seed="%d"/><feDisplacementMap in="SourceGraphic" scale="1.5"/></filter>`+"\n",
		s.seed%1000)
	buf.WriteString("  </defs>\n")
	fmt.Fprintf(buf, "  <style>.gate-glyph { font-family: %s; }</style>\n", fonts.HanddrawnFamily)
}

func (s *Style) RenderBackground(buf *bytes.Buffer, f styles.Frame) {
	path := wobbledRect(0, 0, f.W, f.H, s.seed, frameID)
	fmt.Fprintf(buf, `  <path class="grid" d="%s" fill="%s" stroke="%s" stroke-width="2" stroke-dasharray="6 3"/>`+"\n",
		path, styles.BackgroundFill, styles.BackgroundStroke)
}

func (s *Style) RenderBlock(buf *bytes.Buffer, b styles.Block) {
	path := wobbledRect(b.X, b.Y, b.W, b.H, s.seed, b.ID)
	fmt.Fprintf(buf, `  <path id="%s" class="block" d="%s" fill="%s" stroke="%s" stroke-width="%g" filter="url(#pencil)">`,
		styles.EscapeXML(b.ID), path, styles.EscapeXML(b.Fill), strokeColor, strokeWidth)
	styles.WriteTitle(buf, b.Label)
	buf.WriteString("</path>\n")
}

func (s *Style) RenderIcon(buf *bytes.Buffer, b styles.Block) {
	if b.Icon == "" {
		return
	}
	if b.IconMarkup {
		styles.WriteMarkupIcon(buf, b)
		return
	}
	rot := rotationFor(b.ID, b.W, b.H)
	fmt.Fprintf(buf, `  <text class="gate-glyph" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="%s" transform="rotate(%.2f %.2f %.2f)">%s</text>`+"\n",
		b.CX, b.CY, styles.FontSize(b), styles.EscapeXML(b.TextColor), rot, b.CX, b.CY, styles.EscapeXML(b.Icon))
}

func (s *Style) RenderOverlay(buf *bytes.Buffer, o styles.Overlay) {
	buf.WriteString(`  <g class="overlap">` + "\n")
	fmt.Fprintf(buf, `    <path d="%s" fill="%s" fill-opacity="%g"/>`+"\n",
		wobbledRect(0, 0, o.W, o.H, s.seed, overlayID), styles.OverlayFill, styles.OverlayOpacity)
	fmt.Fprintf(buf, `    <text x="%g" y="%g" font-size="%g" font-weight="bold" font-family="%s" fill="%s" opacity="%g">%s</text>`+"\n",
		o.MarkerX, o.MarkerY, styles.MarkerFontSize, styles.EscapeXML(fonts.MarkerFamily), styles.MarkerFill, styles.MarkerOpacity, styles.EscapeXML(o.Marker))
	buf.WriteString("  </g>\n")
}
