// Package scan finds straight-line occurrences of a target sequence in a
// grid.Grid.
//
// What:
//
//   - Match: does one ray (start, direction) spell the target?
//   - Count: occurrences of the target along every configured direction
//     from every cell — the word-search model. Words may read forwards in
//     any of the 8 directions and overlap freely; scanning a reversed copy
//     of the target covers backwards words, exactly as a word written
//     backwards is the same ray in the opposite direction.
//   - CountCross: X-shaped placements — both diagonals through a center
//     cell spell the arm forwards or backwards.
//
// Why:
//
//	Letter-grid searching is a recurring puzzle shape; the grid's bounded
//	Neighbor lookup makes ray termination at the edge automatic.
//
// Complexity: O(W×H×d×L) for Count, O(W×H×L) for CountCross, L = sequence
// length.
//
// Errors:
//
//   - ErrNilGrid, ErrEmptyTarget, ErrBadArm (cross arms must have odd
//     length ≥ 3), ErrOptionViolation (empty direction set).
package scan
