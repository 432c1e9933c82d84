package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode/utf8"
)

const (
	fontHeightRatio = 0.5
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.6
	fontSizeMin     = 8.0
	fontSizeMax     = 24.0
)

// Frame decoration shared by all styles.
const (
	BackgroundFill   = "#f0f4ff"
	BackgroundStroke = "#bcd"
	OverlayFill      = "red"
	OverlayOpacity   = 0.18
	MarkerFill       = "#e11d48"
	MarkerOpacity    = 0.8
	MarkerFontSize   = 40.0
	FrameRadius      = 8.0
	BlockRadius      = 4.0
)

// FontSize picks a glyph size that fits b's icon inside the block.
func FontSize(b Block) float64 {
	return fontSizeFor(b.W, b.H, utf8.RuneCountInString(b.Icon))
}

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// WriteTitle emits a <title> child for tooltips.
func WriteTitle(buf *bytes.Buffer, label string) {
	if label != "" {
		fmt.Fprintf(buf, "<title>%s</title>", EscapeXML(label))
	}
}

// WriteMarkupIcon embeds raw icon markup translated to the block origin.
func WriteMarkupIcon(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <g class="gate-icon" transform="translate(%.2f,%.2f)">%s</g>`+"\n", b.X, b.Y, b.Icon)
}
