package search

import (
	"testing"

	"github.com/katalvlaran/knighttour/board"
)

// user is shorthand for a user-coordinate position on b.
func user(t *testing.T, b *board.Board, x, y int) board.Position {
	t.Helper()
	p, err := b.Start(x, y)
	if err != nil {
		t.Fatalf("Start(%d,%d): %v", x, y, err)
	}

	return p
}

// asUser flattens ordered physical positions to user (x,y) pairs.
func asUser(moves []board.Position) [][2]int {
	out := make([][2]int, len(moves))
	for i, p := range moves {
		u := p.User()
		out[i] = [2]int{u.X, u.Y}
	}

	return out
}

func equalPairs(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

//----------------------------------------------------------------------------//
// Natural ordering
//----------------------------------------------------------------------------//

// TestNaturalOrder verifies fixed offset order, border filtering, and the
// one-trial-per-offset accounting.
func TestNaturalOrder(t *testing.T) {
	b, _ := board.New(5, 5)
	st := &Stats{}
	ord, err := newOrderer(Natural, b, knightOffsets(DefaultOptions()), st)
	if err != nil {
		t.Fatalf("newOrderer: %v", err)
	}

	// From the center, all 8 landings are interior: candidates come out in
	// the canonical offset order.
	got := asUser(ord.order(user(t, b, 2, 2)))
	want := [][2]int{{4, 3}, {3, 4}, {1, 4}, {0, 3}, {0, 1}, {1, 0}, {3, 0}, {4, 1}}
	if !equalPairs(got, want) {
		t.Errorf("center candidates = %v; want %v", got, want)
	}
	if st.Trials != 8 {
		t.Errorf("Trials = %d; want 8", st.Trials)
	}

	// From the corner, the border filters all but two — the trial charge
	// still counts every examined offset.
	got = asUser(ord.order(user(t, b, 0, 0)))
	want = [][2]int{{2, 1}, {1, 2}}
	if !equalPairs(got, want) {
		t.Errorf("corner candidates = %v; want %v", got, want)
	}
	if st.Trials != 16 {
		t.Errorf("Trials = %d; want 16", st.Trials)
	}

	// Occupied landings are filtered too.
	b.Mark(user(t, b, 2, 1), 5)
	got = asUser(ord.order(user(t, b, 0, 0)))
	want = [][2]int{{1, 2}}
	if !equalPairs(got, want) {
		t.Errorf("occupied filter = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// NarrowestFirst ordering
//----------------------------------------------------------------------------//

// TestNarrowestOrder verifies Warnsdorff reordering, stable ties, and the
// degree-computation trial charge.
func TestNarrowestOrder(t *testing.T) {
	b, _ := board.New(5, 5)
	st := &Stats{}
	ord, _ := newOrderer(NarrowestFirst, b, knightOffsets(DefaultOptions()), st)

	// Empty board, corner: both candidates (2,1) and (1,2) have onward
	// degree 6 — a tie, so offset order is kept.
	got := asUser(ord.order(user(t, b, 0, 0)))
	want := [][2]int{{2, 1}, {1, 2}}
	if !equalPairs(got, want) {
		t.Errorf("tie candidates = %v; want %v", got, want)
	}
	// 8 offsets + 2 candidates × 8 degree probes.
	if st.Trials != 24 {
		t.Errorf("Trials = %d; want 24", st.Trials)
	}

	// Choke (1,2)'s onward moves: its degree drops below (2,1)'s and it
	// must now come first, inverting the natural order.
	for _, xy := range [][2]int{{2, 4}, {0, 4}, {2, 0}, {3, 1}} {
		b.Mark(user(t, b, xy[0], xy[1]), 0)
	}
	got = asUser(ord.order(user(t, b, 0, 0)))
	want = [][2]int{{1, 2}, {2, 1}}
	if !equalPairs(got, want) {
		t.Errorf("choked candidates = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// Centrifugal ordering
//----------------------------------------------------------------------------//

// TestCentrifugalOrder verifies farthest-first sorting with stable ties.
func TestCentrifugalOrder(t *testing.T) {
	b, _ := board.New(5, 5)
	st := &Stats{}
	ord, _ := newOrderer(Centrifugal, b, knightOffsets(DefaultOptions()), st)

	// From (1,1) the valid landings are (3,2),(2,3),(0,3),(3,0) with
	// squared center distances 1,1,5,5: the two far cells lead, each pair
	// keeping offset order.
	got := asUser(ord.order(user(t, b, 1, 1)))
	want := [][2]int{{0, 3}, {3, 0}, {3, 2}, {2, 3}}
	if !equalPairs(got, want) {
		t.Errorf("candidates = %v; want %v", got, want)
	}
	if st.Trials != 8 {
		t.Errorf("Trials = %d; want 8", st.Trials)
	}
}

//----------------------------------------------------------------------------//
// Offset permutation
//----------------------------------------------------------------------------//

// TestKnightOffsets covers the canonical order, the seed==0 policy, and
// shuffle reproducibility.
func TestKnightOffsets(t *testing.T) {
	plain := knightOffsets(DefaultOptions())
	if len(plain) != 8 {
		t.Fatalf("len = %d; want 8", len(plain))
	}
	for i, d := range baseOffsets {
		if plain[i] != d {
			t.Errorf("plain[%d] = %v; want %v", i, plain[i], d)
		}
	}

	random := DefaultOptions()
	random.RandomOrder = true
	random.Seed = 7
	first := knightOffsets(random)
	second := knightOffsets(random)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seeded shuffle not reproducible at %d: %v vs %v", i, first[i], second[i])
		}
	}

	// Whatever the order, the set of offsets is intact.
	seen := map[[2]int]bool{}
	for _, d := range first {
		seen[d] = true
	}
	if len(seen) != 8 {
		t.Errorf("shuffle lost offsets: %v", first)
	}
}
