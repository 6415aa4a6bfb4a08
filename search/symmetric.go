package search

import "github.com/katalvlaran/knighttour/board"

// runSymmetric is the symmetry-constrained DFS loop. Only path A — move
// numbers 0..half−1 — is ever pushed on the stack; path B exists solely as
// the mirror image of path A. Every descent additionally blocks the
// mirror of the entered cell (MirrorBlocked, so it reads as occupied to
// the ordering), and every backtrack unblocks it again. The single-stack
// bookkeeping plus lazy mirroring is a deliberate space/time tradeoff:
// no second stack, no second path to keep consistent.
//
// Acceptance: when path A covers half the board and its head has a knight
// move to mirror(start), the two halves chain into a full tour — and a
// closed one, since the link condition mirrors onto path B's return to
// start. renumber then writes path B's move numbers into the board.
func (e *engine) runSymmetric(start board.Position, sym board.Symmetry) Status {
	half := e.b.Size() / 2
	mstart := e.b.Mirror(sym, start)

	e.b.Mark(start, 0)
	e.b.Block(mstart)
	e.push(situation{pos: start, num: 0, moves: e.ord.order(start)})
	e.emit(StepInit, 0, start)

	for len(e.stack) > 0 {
		if e.limit > 0 && e.stats.Trials >= e.limit {
			return LimitReached
		}
		cur := &e.stack[len(e.stack)-1]

		if cur.num+1 == half {
			if e.canConnect(cur.pos, mstart) {
				e.renumber(sym, half)

				return Found
			}
			// No link to the mirrored start: keep trying this depth's
			// remaining candidates, or backtrack.
		}

		if cur.next < len(cur.moves) {
			np := cur.moves[cur.next]
			cur.next++

			// Mirror blocking can claim a candidate after its list was
			// built; skip occupied cells.
			if !e.b.IsEmpty(np) {
				continue
			}

			num := cur.num + 1
			e.b.Mark(np, num)
			e.b.Block(e.b.Mirror(sym, np))
			e.push(situation{pos: np, num: num, moves: e.ord.order(np)})
			e.emit(StepDescend, num, np)

			continue
		}

		e.emit(StepBacktrack, cur.num, cur.pos)
		// The start and its mirror stay marked until global termination.
		if cur.num > 0 {
			e.b.Unmark(cur.pos)
			e.b.Unmark(e.b.Mirror(sym, cur.pos))
		}
		e.pop()
	}

	return Exhausted
}

// renumber completes a symmetric solution in place. Path A already holds
// 0..half−1; path B's numbers half..total−1 are assigned by walking path A
// in order and writing half+i into mirror(pathA[i]), overwriting the
// MirrorBlocked reservations. Complexity: O(W×H).
func (e *engine) renumber(sym board.Symmetry, half int) {
	pathA := make([]board.Position, half)
	e.b.Interior(func(p board.Position, c board.Cell) {
		if c.Visited() && int(c) < half {
			pathA[int(c)] = p
		}
	})
	for i, p := range pathA {
		e.b.Mark(e.b.Mirror(sym, p), half+i)
	}
}
