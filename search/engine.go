package search

import "github.com/katalvlaran/knighttour/board"

// situation is one explicit stack frame of the DFS walk: the cell entered,
// the move number assigned on entering it, its ordered candidate list, and
// the cursor into that list. One situation per depth level; the stack of
// situations replaces the call stack, so board area never presses on host
// recursion limits.
type situation struct {
	pos   board.Position
	num   int
	moves []board.Position
	next  int
}

// engine holds all state for one Solve invocation. A dedicated struct
// (rather than closures) keeps the hot-path state predictable and the two
// search loops — plain and symmetric — easy to compare side by side.
type engine struct {
	b      *board.Board
	ord    orderer
	offs   [][2]int
	stats  *Stats
	limit  int64
	onStep func(StepEvent)
	stack  []situation
}

// Solve runs one exhaustive first-fit search on b from the given start
// cell (user coordinates). It validates the configuration, seeds the
// initial frame, and dispatches to the plain or symmetric loop.
//
// The returned Result reports Found / Exhausted / LimitReached plus the
// accumulated trial count; Path is populated only on Found, in user
// coordinates ordered by move number. Negative outcomes are not errors.
//
// b is exclusively owned by the engine for the duration of the call and
// holds the solved numbering afterwards when a tour was found.
//
// Complexity: worst case exponential in W×H; memory O(W×H).
func Solve(b *board.Board, startX, startY int, opts Options) (Result, error) {
	// Stage 1 - configuration feasibility (spares the engine from running
	// forever on impossible requests).
	if b == nil {
		return Result{}, ErrNilBoard
	}
	if err := validate(b, opts); err != nil {
		return Result{}, err
	}
	start, err := b.Start(startX, startY)
	if err != nil {
		return Result{}, err
	}
	if b.OnAxis(opts.Symmetry, start) {
		return Result{}, ErrStartOnAxis
	}

	// Stage 2 - resolve the run's offset order and ordering heuristic once.
	offs := knightOffsets(opts)
	stats := &Stats{}
	ord, err := newOrderer(opts.Mode, b, offs, stats)
	if err != nil {
		return Result{}, err
	}
	e := &engine{
		b:      b,
		ord:    ord,
		offs:   offs,
		stats:  stats,
		limit:  opts.Limit,
		onStep: opts.OnStep,
	}

	// Stage 3 - run the loop matching the symmetry request.
	var st Status
	if opts.Symmetry == board.SymNone {
		st = e.run(start, opts.Closed)
	} else {
		st = e.runSymmetric(start, opts.Symmetry)
	}

	res := Result{Status: st, Trials: stats.Trials}
	if st == Found {
		phys, perr := b.ExtractPath()
		if perr != nil {
			// The loops only report Found with a complete numbering.
			return Result{}, perr
		}
		res.Path = make([]board.Position, len(phys))
		for i, p := range phys {
			res.Path[i] = p.User()
		}
	}

	return res, nil
}

// run is the plain iterative DFS loop. Per step:
//  1. full depth reached ⇒ Found for an open tour; for a closed tour only
//     when the head has a knight move back to start — otherwise the frame
//     falls through (its candidate list is empty at full depth, so it
//     backtracks).
//  2. remaining candidates ⇒ mark the next one, order its continuations,
//     push its frame.
//  3. exhausted frame ⇒ revert the cell, pop; empty stack ⇒ Exhausted.
func (e *engine) run(start board.Position, closed bool) Status {
	total := e.b.Size()

	e.b.Mark(start, 0)
	e.push(situation{pos: start, num: 0, moves: e.ord.order(start)})
	e.emit(StepInit, 0, start)

	for len(e.stack) > 0 {
		if e.limit > 0 && e.stats.Trials >= e.limit {
			return LimitReached
		}
		cur := &e.stack[len(e.stack)-1]

		if cur.num+1 == total {
			if !closed || e.canConnect(cur.pos, start) {
				return Found
			}
			// Closed requested and no returning move: the cycle gate only
			// blocks acceptance, not this branch.
		}

		if cur.next < len(cur.moves) {
			np := cur.moves[cur.next]
			cur.next++

			num := cur.num + 1
			e.b.Mark(np, num)
			e.push(situation{pos: np, num: num, moves: e.ord.order(np)})
			e.emit(StepDescend, num, np)

			continue
		}

		e.emit(StepBacktrack, cur.num, cur.pos)
		e.b.Unmark(cur.pos)
		e.pop()
	}

	return Exhausted
}

// canConnect reports whether to is one knight move away from from.
func (e *engine) canConnect(from, to board.Position) bool {
	for _, d := range e.offs {
		if from.X+d[0] == to.X && from.Y+d[1] == to.Y {
			return true
		}
	}

	return false
}

func (e *engine) push(s situation) { e.stack = append(e.stack, s) }

func (e *engine) pop() { e.stack = e.stack[:len(e.stack)-1] }

// emit reports one step to the optional trace hook, in user coordinates.
func (e *engine) emit(a StepAction, num int, p board.Position) {
	if e.onStep == nil {
		return
	}
	e.onStep(StepEvent{Action: a, Move: num, Pos: p.User(), Depth: len(e.stack)})
}
