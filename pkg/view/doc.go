// Package view holds the display state of a placed operator.
//
// An operator is shown either compact (its own symbol, one cell wide) or
// exploded, where a custom operator's internal component grid is laid out
// via [grid.Resolve]. [State] owns the mode flag, [Toggle] is the control
// that flips it, and [Derive] turns an operator plus a mode into a [Frame]
// that the layout and render packages consume.
//
// Nothing here is cached between calls: every [Derive] recomputes from the
// operator as given, so edits to its components are always reflected.
package view
