package styles

import "bytes"

// Style defines the visual appearance of an operator frame.
// Implementations control how the grid background, blocks, icons and the
// overlap warning are drawn.
type Style interface {
	// Name is the identifier used on the command line and in JSON output.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, patterns, fonts).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the exploded grid's background panel.
	RenderBackground(buf *bytes.Buffer, f Frame)
	// RenderBlock writes the SVG for a single component rectangle.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderIcon writes a block's gate glyph or embedded icon markup.
	RenderIcon(buf *bytes.Buffer, b Block)
	// RenderOverlay writes the overlap warning tint and marker.
	RenderOverlay(buf *bytes.Buffer, o Overlay)
}

// Frame is the drawable area.
type Frame struct {
	W, H float64
}

// Block contains all data needed to render one rectangle.
type Block struct {
	ID         string  // Element id, unique within the SVG
	GateID     string  // Catalog id (empty for compact symbols)
	Label      string  // Title, used for <title> tooltips
	Icon       string  // Glyph text or SVG markup
	IconMarkup bool    // Icon is raw SVG to embed
	Fill       string  // Rectangle fill
	TextColor  string  // Glyph color chosen for contrast with Fill
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
}

// Overlay is the warning drawn when components overlap.
type Overlay struct {
	W, H             float64
	Marker           string
	MarkerX, MarkerY float64
}
