package search

import (
	"sort"

	"github.com/katalvlaran/knighttour/board"
)

// baseOffsets is the canonical knight-move order: the 8 offsets
// {(±1,±2),(±2,±1)} walked counter-clockwise from (2,1). Candidate lists
// are built by walking this sequence (or its one-time shuffle), so the
// sequence itself is never reordered mid-search — only each step's
// candidate list is, by the active ordering.
var baseOffsets = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// knightOffsets returns this run's offset sequence: a copy of baseOffsets,
// shuffled once when opts.RandomOrder is set (seed==0 ⇒ default stream).
func knightOffsets(opts Options) [][2]int {
	offs := make([][2]int, len(baseOffsets))
	for i, d := range baseOffsets {
		offs[i] = d
	}
	if opts.RandomOrder {
		shuffleOffsetsInPlace(offs, rngFromSeed(opts.Seed))
	}

	return offs
}

// orderer is the single capability a move-ordering heuristic implements:
// the ordered list of candidate next positions from p. Implementations are
// stateless apart from reading the board and recording trials, so swapping
// one for another never touches the engine.
type orderer interface {
	order(p board.Position) []board.Position
}

// newOrderer resolves the closed Mode set to an ordering implementation.
func newOrderer(mode Mode, b *board.Board, offs [][2]int, st *Stats) (orderer, error) {
	switch mode {
	case Natural:
		return &naturalOrder{b: b, offs: offs, stats: st}, nil
	case NarrowestFirst:
		return &narrowestOrder{b: b, offs: offs, stats: st}, nil
	case Centrifugal:
		c := &centrifugalOrder{b: b, offs: offs, stats: st}
		c.cx, c.cy = b.Center()

		return c, nil
	default:
		return nil, ErrUnknownMode
	}
}

// naturalOrder emits candidates in the fixed offset order, filtered to
// empty cells. Each examined offset counts as one trial, empty or not.
type naturalOrder struct {
	b     *board.Board
	offs  [][2]int
	stats *Stats
}

// order implements orderer. Complexity: O(8).
func (o *naturalOrder) order(p board.Position) []board.Position {
	moves := make([]board.Position, 0, len(o.offs))
	for _, d := range o.offs {
		np := board.Position{X: p.X + d[0], Y: p.Y + d[1]}
		if o.b.IsEmpty(np) {
			moves = append(moves, np)
		}
	}
	o.stats.Record(len(o.offs))

	return moves
}

// narrowestOrder implements Warnsdorff's rule: candidates sorted ascending
// by onward degree — the count of empty cells one further knight move away.
// The degree is a local, static property, not search-tree lookahead.
// Visiting low-degree cells first avoids stranding them for later, which
// cuts backtracking dramatically.
//
// Trials: one per examined offset, plus one per offset per valid candidate
// for the degree computation, reflecting the real work performed.
type narrowestOrder struct {
	b     *board.Board
	offs  [][2]int
	stats *Stats
}

// degree counts empty cells reachable from p with one knight move.
func (o *narrowestOrder) degree(p board.Position) int {
	n := 0
	for _, d := range o.offs {
		if o.b.IsEmpty(board.Position{X: p.X + d[0], Y: p.Y + d[1]}) {
			n++
		}
	}

	return n
}

// order implements orderer. Complexity: O(8 + 8·c) with c valid candidates.
func (o *narrowestOrder) order(p board.Position) []board.Position {
	type cand struct {
		pos board.Position
		deg int
	}
	cands := make([]cand, 0, len(o.offs))
	for _, d := range o.offs {
		np := board.Position{X: p.X + d[0], Y: p.Y + d[1]}
		if o.b.IsEmpty(np) {
			cands = append(cands, cand{pos: np, deg: o.degree(np)})
		}
	}
	o.stats.Record(len(o.offs) + len(cands)*len(o.offs))

	// Stable: ties keep relative offset order.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].deg < cands[j].deg })

	moves := make([]board.Position, len(cands))
	for i, c := range cands {
		moves[i] = c.pos
	}

	return moves
}

// centrifugalOrder sorts candidates descending by squared Euclidean
// distance from the board center: hard-to-reach edge and corner cells are
// consumed while central, high-degree cells remain a fallback reservoir.
type centrifugalOrder struct {
	b      *board.Board
	offs   [][2]int
	stats  *Stats
	cx, cy float64
}

// fromCenter returns the squared distance of p from the board center.
func (o *centrifugalOrder) fromCenter(p board.Position) float64 {
	dx := float64(p.X) - o.cx
	dy := float64(p.Y) - o.cy

	return dx*dx + dy*dy
}

// order implements orderer. Complexity: O(8), plus the O(c log c) sort.
func (o *centrifugalOrder) order(p board.Position) []board.Position {
	type cand struct {
		pos  board.Position
		dist float64
	}
	cands := make([]cand, 0, len(o.offs))
	for _, d := range o.offs {
		np := board.Position{X: p.X + d[0], Y: p.Y + d[1]}
		if o.b.IsEmpty(np) {
			cands = append(cands, cand{pos: np, dist: o.fromCenter(np)})
		}
	}
	o.stats.Record(len(o.offs))

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist > cands[j].dist })

	moves := make([]board.Position, len(cands))
	for i, c := range cands {
		moves[i] = c.pos
	}

	return moves
}
