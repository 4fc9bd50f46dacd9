// Package grid provides a bounded, rectangular, row-major 2D grid of
// arbitrary element type, together with the Point and Direction primitives
// every grid algorithm in this module is built on.
//
// What:
//
//   - Point: immutable integer (X, Y) coordinate with component-wise Add/Sub.
//   - Direction: closed enumeration of the 8 unit movement vectors
//     (4 cardinal + 4 diagonal), with Offset, Opposite and 90° rotation.
//   - Grid[T]: flat []T plus a row length; O(1) conversion between linear
//     index and 2D point in both directions.
//   - Neighbor: bounded single-step lookup — the comma-ok result is the one
//     reusable policy by which every traversal terminates at the grid edge.
//
// Why:
//
//   - Flood fill, BFS, Dijkstra and directional scans all key their visited
//     sets and distance arrays by point or by index; both conversions sit in
//     hot loops and must be O(1) with no nested-slice indirection.
//   - Row-major order gives a total ordering: iterating indices 0..Len()
//     visits cells row by row, left to right.
//
// Value semantics:
//
//	A Grid is created once from parsed input and never shared mutably.
//	What-if exploration (obstacle placement, robot pushing) operates on a
//	Clone; each clone is exclusively owned by the scenario that made it.
//
// Errors:
//
//   - ErrEmptyGrid: no cells, or a non-positive row length.
//   - ErrNonRectangular: cell count is not a whole number of rows.
//
// Out-of-bounds index↔point conversion or element access is a programmer
// error in the calling algorithm, not a recoverable condition: those
// operations panic rather than return a sentinel, because a silently wrong
// index corrupts every downstream search result. Bounds-check first with
// InBounds or Neighbor.
//
// Complexity: all operations O(1) except Clone, FromText, Fill and the Find
// helpers, which are O(W×H).
package grid
