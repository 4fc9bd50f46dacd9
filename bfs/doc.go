// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What:
//
//   - Explore cells in non-decreasing step count from a start point.
//   - Result carries Order (visit sequence), Dist (point → steps from start)
//     and Parent (point → predecessor), with PathTo reconstruction.
//   - A passable predicate turns cells into walls; a step filter vetoes
//     individual moves (e.g. "height must rise by exactly one").
//   - Honors MaxDepth (d > 0) or explicit no limit (d == 0), a custom
//     direction set, context cancellation, and an OnVisit hook.
//
// Why:
//
//   - Unweighted shortest paths through obstacle fields are the workhorse of
//     maze-style puzzles: memory-corruption escapes, racetrack distance
//     fields, trailhead reachability.
//   - The grid edge needs no special casing: Neighbor's comma-ok result
//     bounds the frontier.
//
// Determinism:
//
//	Neighbors are expanded in the fixed order of the configured direction
//	slice (grid.Cardinals by default), so Order is fully reproducible.
//
// Complexity (W×H cells, d directions):
//
//   - Time:   O(W×H×d)
//   - Memory: O(W×H) for queue, Dist, and Parent
//
// Errors:
//
//   - ErrNilGrid             if the grid pointer is nil.
//   - ErrStartOutOfBounds    if the start point lies outside the grid.
//   - ErrStartBlocked        if the start point is not passable.
//   - ErrOptionViolation     for invalid options (negative MaxDepth, empty
//     direction set).
//   - ErrUnreachable         from Result.PathTo for unreached destinations.
//   - Context errors and wrapped OnVisit hook errors.
package bfs
