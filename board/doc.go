// Package board implements the sentinel-bordered grid a knight's-tour
// search runs on.
//
// What:
//
//   - Board wraps a (W+4)×(H+4) cell grid: a W×H interior surrounded by a
//     2-cell Blocked guard border on every side.
//   - Cell encodes occupancy: Blocked, Empty, MirrorBlocked, or a visited
//     move number ≥ 0.
//   - Mirror maps a position to its reflection (horizontal, vertical, or
//     180° point) in bordered coordinates, for symmetric tours.
//   - ExtractPath reads a completed tour back out of the grid, ordered by
//     move number.
//
// Why:
//
//   - Any of the 8 knight offsets applied to an interior cell lands inside
//     the bordered grid, so occupancy checks need no bounds tests.
//   - Board performs no protocol validation of Mark/Unmark: the search
//     engine owns the marking invariant, keeping the hot path branch-free.
//
// Complexity:
//
//   - New:         O(W×H) time and memory.
//   - At, IsEmpty, Mark, Unmark, Mirror: O(1).
//   - ExtractPath: O(W×H).
//
// Errors:
//
//   - ErrNonPositiveSize: width or height ≤ 0.
//   - ErrStartOutOfBounds: start cell outside [0,W)×[0,H).
//   - ErrIncompletePath: move numbers do not form a permutation of [0,W·H).
package board
