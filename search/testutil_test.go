package search_test

import (
	"testing"

	"github.com/katalvlaran/knighttour/board"
)

// knightDeltas are the legal knight moves, for tour verification.
var knightDeltas = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// isKnightMove reports whether b is one knight move from a.
func isKnightMove(a, b board.Position) bool {
	for _, d := range knightDeltas {
		if a.X+d[0] == b.X && a.Y+d[1] == b.Y {
			return true
		}
	}

	return false
}

// assertTour verifies the coverage and adjacency properties of path on a
// w×h board: exactly w·h distinct in-bounds cells, consecutive pairs one
// knight move apart, and (when closed) last→first adjacency too.
func assertTour(t *testing.T, path []board.Position, w, h int, closed bool) {
	t.Helper()

	if len(path) != w*h {
		t.Fatalf("path length = %d; want %d", len(path), w*h)
	}
	seen := make(map[board.Position]bool, len(path))
	for i, p := range path {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			t.Fatalf("path[%d] = %v out of bounds %dx%d", i, p, w, h)
		}
		if seen[p] {
			t.Fatalf("path[%d] = %v visited twice", i, p)
		}
		seen[p] = true
		if i > 0 && !isKnightMove(path[i-1], p) {
			t.Fatalf("path[%d-1]→path[%d] (%v→%v) is not a knight move", i, i, path[i-1], p)
		}
	}
	if closed && !isKnightMove(path[len(path)-1], path[0]) {
		t.Fatalf("closed tour: last %v has no knight move back to first %v",
			path[len(path)-1], path[0])
	}
}
