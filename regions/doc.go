// Package regions discovers connected regions of equal-valued cells in a
// grid.Grid and computes per-region metrics.
//
// What:
//
//   - Regions groups every cell into a maximal connected run of cells
//     holding the same value, under 4- or 8-directional adjacency.
//   - Region exposes Area (cell count), Perimeter (cardinal border edges
//     leaving the region) and Sides (straight fence segments, computed by
//     corner counting).
//
// Why:
//
//   - Flood fill is the workhorse traversal of grid puzzles: garden plots,
//     trail basins and island detection all reduce to it.
//   - Perimeter and Sides are the two pricing models for fenced regions:
//     Σ area·perimeter and Σ area·sides.
//
// Determinism:
//
//	Regions are emitted in row-major order of their first (top-left-most)
//	cell, and cells within a region in BFS discovery order with neighbors
//	expanded clockwise from Up. Results are fully reproducible.
//
// Corner counting:
//
//	A region has as many sides as corners. For each cell and each of the 4
//	diagonal corner pairs (vertical arm, horizontal arm): an exterior corner
//	has both arms outside the region; an interior corner has both arms
//	inside but the diagonal cell outside.
//
// Complexity:
//
//   - Regions: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - Area: O(1). Perimeter, Sides: O(|region|).
//
// Errors:
//
//   - ErrNilGrid: nil grid passed to Regions.
//   - ErrOptionViolation: unknown Connectivity value.
package regions
