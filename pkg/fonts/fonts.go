// Package fonts holds the CSS font stacks used in rendered SVG.
//
// No font data is embedded; the stacks name common system fonts so that
// exported SVG looks reasonable in browsers and under rsvg-convert.
package fonts

// SansFamily is used by the simple style for icon glyphs and titles.
const SansFamily = `'Inter', 'Helvetica Neue', Arial, sans-serif`

// HanddrawnFamily is used by the hand-drawn style.
const HanddrawnFamily = `'xkcd Script', 'Comic Sans MS', 'Bradley Hand', 'Segoe Script', sans-serif`

// MarkerFamily renders the overlap marker glyph; it needs a font with U+2717.
const MarkerFamily = `'DejaVu Sans', 'Segoe UI Symbol', sans-serif`
