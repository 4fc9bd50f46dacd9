// Package dijkstra provides cheapest-path search over a grid.Grid with
// non-negative per-move costs and optional turn penalties.
//
// What:
//
//   - Computes the minimum cost from a start cell to a goal cell, processing
//     states in increasing cost via a container/heap min-heap with lazy
//     decrease-key (duplicates pushed, stale entries skipped).
//   - StepCost prices each move (default 1); Passable turns cells into walls.
//   - WithTurnCost extends the state to (point, heading): a move in any
//     direction other than the current heading pays the penalty. This is the
//     "steps are cheap, turns are expensive" maze model, where the same cell
//     crossed with a different heading can carry a very different cost.
//   - WithReturnPath reconstructs one cheapest path via predecessor links.
//
// Why:
//
//   - Weighted grids (risk fields, terrain costs) outgrow plain BFS.
//   - Turn-penalty mazes need heading in the state or they silently return
//     under-costed answers.
//
// Complexity (N = W×H cells, ×4 headings under turn costs, d directions):
//
//   - Time:  O(N×d log(N×d))
//   - Space: O(N×d)
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrStartBlocked
//     for invalid input, in that validation order.
//   - ErrOptionViolation for invalid options (negative turn cost or cost
//     cap, empty direction set).
//   - ErrNegativeCost if the step-cost function returns < 0 (fail fast:
//     Dijkstra's invariant breaks silently otherwise).
//   - ErrNoPath when the goal is unreachable or beyond MaxCost.
//   - Context errors on cancellation.
package dijkstra
