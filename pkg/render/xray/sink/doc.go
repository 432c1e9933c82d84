// Package sink writes operator layouts to output formats.
//
// # Formats
//
//   - [RenderSVG]: standalone SVG, styled by a [styles.Style]
//   - [RenderJSON]: the layout geometry for web front ends
//   - [RenderPNG], [RenderPDF]: SVG rasterized through rsvg-convert
//   - [RenderTerminal]: a lipgloss grid preview of the occupancy map
//   - [ConflictDOT], [RenderConflictSVG]: a Graphviz diagram of which
//     components overlap which
//
// # Drawing Order
//
// SVG output paints, in order: style defs, the grid background (exploded
// frames only), every block rectangle in plan order, every icon, then the
// overlap overlay. Later blocks therefore cover earlier ones where they
// overlap, and the overlay tints everything.
package sink
