package search_test

import (
	"testing"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/search"
)

// BenchmarkSolve_Warnsdorff8x8 measures the classical 8×8 corner search
// with the NarrowestFirst ordering, which completes with little or no
// backtracking. Board construction is inside the loop on purpose: Solve
// consumes a fresh board per run.
func BenchmarkSolve_Warnsdorff8x8(b *testing.B) {
	opts := search.DefaultOptions()
	opts.Mode = search.NarrowestFirst

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		brd, _ := board.New(8, 8)
		_, _ = search.Solve(brd, 0, 0, opts)
	}
}

// BenchmarkSolve_Natural5x5 measures the exhaustive baseline on the
// classical 5×5 corner instance.
func BenchmarkSolve_Natural5x5(b *testing.B) {
	for i := 0; i < b.N; i++ {
		brd, _ := board.New(5, 5)
		_, _ = search.Solve(brd, 0, 0, search.DefaultOptions())
	}
}

// BenchmarkSolve_Point6x6 measures the symmetric half-board search that
// mirrors 18 explored cells into a 36-cell cycle.
func BenchmarkSolve_Point6x6(b *testing.B) {
	opts := search.DefaultOptions()
	opts.Symmetry = board.SymPoint

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		brd, _ := board.New(6, 6)
		_, _ = search.Solve(brd, 0, 0, opts)
	}
}
