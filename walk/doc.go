// Package walk simulates a deterministic bounded walk over a grid.Grid:
// the patrol model.
//
// What:
//
//   - Walk advances a walker in a fixed cardinal heading until the cell
//     ahead is blocked, turns per a pluggable policy (default: 90° right),
//     and stops when the walker leaves the grid (Exited) or revisits a
//     (position, heading) state (Looped — positions alone do not prove a
//     loop, since patrols legitimately cross cells twice).
//   - Result reports the outcome, the distinct cells entered in first-visit
//     order, and the number of forward steps.
//   - LoopingObstacles answers the what-if question: which single obstacle
//     placement traps the walker? Every trial mutates its own clone of the
//     grid, never the original.
//
// Why:
//
//	Straight-until-blocked movement with loop detection shows up in guard
//	patrols and sliding-robot puzzles, and the obstacle search is the
//	canonical use of the grid's value-semantics Clone.
//
// Complexity:
//
//   - Walk: O(W×H×4) time and memory, bounded by the state space.
//   - LoopingObstacles: O((W×H)²) worst case; cancellable via WithContext.
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrStartBlocked, ErrBadHeading
//     (diagonal headings have no defined 90° turn).
//   - Context errors on cancellation.
package walk
