// Package layout converts a derived frame into pixel geometry.
//
// Exploded frames place each plan entry at gridOffset*(cell+margin) and size
// it n*cell+(n-1)*margin, so multi-cell components absorb the margins they
// span. The frame is exactly large enough for the bounding box. Compact
// frames are one cell wide and as tall as the operator's row span.
//
// All values are in SVG user units.
package layout
