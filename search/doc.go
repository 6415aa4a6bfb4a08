// Package search implements the knight's-tour search engine: an iterative
// depth-first backtracking walk over a board.Board, guided by a pluggable
// move-ordering heuristic.
//
// What:
//
//   - Solve runs one exhaustive first-fit search to completion: the first
//     tour consistent with the configured move order is returned.
//   - Three move orderings: Natural (fixed offset order), NarrowestFirst
//     (Warnsdorff's rule — fewest onward moves first), Centrifugal
//     (farthest from board center first).
//   - Closed tours gate acceptance on a knight move back to the start.
//   - Symmetric tours (horizontal / vertical / point) search only half the
//     board, mirror-blocking each move's counterpart, then reconstruct the
//     second half by reflection. Symmetric solutions are closed by
//     construction.
//   - Stats counts every examined candidate offset; an optional trial
//     budget (Options.Limit) aborts long searches early.
//
// Why:
//
//   - An explicit stack of situation frames replaces recursion, so board
//     area never presses on the host call stack.
//   - Statistics are injected per invocation, never process-global, which
//     keeps repeated runs independently measurable and deterministic.
//
// Complexity:
//
//   - Worst case exponential in W×H (exhaustive search). NarrowestFirst
//     typically finds open tours with little or no backtracking.
//   - Per step: O(1) frame bookkeeping + one ordering call
//     (O(8) for Natural/Centrifugal, O(8+8·c) for NarrowestFirst with c
//     valid candidates).
//   - Memory: O(W×H) board + O(depth) stack, depth ≤ W×H.
//
// Options:
//
//   - Options.Mode: Natural | NarrowestFirst | Centrifugal.
//   - Options.Closed: require a Hamiltonian cycle.
//   - Options.Symmetry: board.SymNone | SymHorizontal | SymVertical | SymPoint.
//   - Options.RandomOrder / Seed: one-time shuffle of the knight offsets
//     at configuration time (seed==0 ⇒ fixed default stream).
//   - Options.Limit: trial budget; exceeded ⇒ Status LimitReached.
//   - Options.OnStep: optional per-step trace hook.
//
// Errors:
//
//   - ErrNilBoard: nil board.
//   - ErrUnknownMode: Mode outside the closed variant set.
//   - ErrNegativeLimit: Limit < 0.
//   - ErrClosedParity: closed tour on an odd×odd board.
//   - ErrSymmetryParity: symmetry axis dimension(s) not even.
//   - ErrStartOnAxis: start cell is its own mirror.
//
// Exhaustion and a spent trial budget are legitimate negative outcomes,
// reported as Result.Status, never as errors.
package search
