// Package styles defines the visual styles for operator frames.
//
// A [Style] writes SVG fragments into a shared buffer; the sink decides
// what to draw and in which order (background, blocks, icons, overlay).
// [Simple] is the default. The hand-drawn look lives in the handdrawn
// subpackage.
package styles
