// Package grid resolves the exploded view of a composite operator.
//
// # Overview
//
// Given the sub-components of a custom gate placed on an integer grid, the
// package computes everything needed to draw the exploded ("X-Ray") view:
//
//  1. [Bounds]: the minimal bounding box enclosing every footprint
//  2. [Occupy]: which component owns each cell, and whether any cell is
//     claimed more than once
//  3. [BuildPlan]: the ordered draw entries plus the overlap overlay
//
// [Resolve] chains the three stages. Every function is pure: it reads the
// component slice and allocates fresh maps, so concurrent calls never share
// state.
//
// # Occupancy
//
// [Occupancy] keeps two independent structures built in the same pass:
//
//   - a last-write-wins lookup from cell to component index, used when
//     scanning the box for draw entries
//   - per-row claimed-column counts, used only for overlap detection
//
// The lookup never records more than one owner per cell, so it cannot see
// conflicts. The claim counts see every write regardless of input order, so
// two components sharing a cell are always flagged.
//
// # Render Plan
//
// The box is scanned row-major. A cell produces a draw entry only when it is
// a component's own top-left corner, so a multi-cell component is drawn once.
// When an overlap hides a component's top-left behind a later writer, that
// component is still emitted at its corner, ahead of the owner, so every
// component keeps exactly one entry and overlapping components stack in
// input order.
//
// Components whose gate id is missing from the catalog produce no entry.
// They are listed in [Plan.Skipped] and still take part in overlap
// detection.
//
// # Errors
//
// The only failure is an empty component set, reported as
// [errors.ErrCodeEmptyComponentSet]. Callers treat it as "render nothing".
// Overlap is not an error; it sets [Plan.Overlap] and [Plan.Overlay].
//
// [errors.ErrCodeEmptyComponentSet]: github.com/matzehuels/gatexray/pkg/errors.ErrCodeEmptyComponentSet
package grid
