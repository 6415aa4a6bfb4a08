package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/search"
)

// SymmetricSuite exercises the half-board mirrored search.
type SymmetricSuite struct {
	suite.Suite
}

// TestPoint6x6 is the canonical symmetric scenario: the engine explores 18
// cells and mirrors them into a full 36-cell cycle.
func (s *SymmetricSuite) TestPoint6x6() {
	b, err := board.New(6, 6)
	require.NoError(s.T(), err)

	opts := search.DefaultOptions()
	opts.Symmetry = board.SymPoint
	res, err := search.Solve(b, 0, 0, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Found, res.Status)

	// A symmetric tour is a Hamiltonian cycle by construction.
	assertTour(s.T(), res.Path, 6, 6, true)

	// Symmetry identity: mirror(Path[i]) == Path[(i+half) mod total].
	total := len(res.Path)
	half := total / 2
	for i, p := range res.Path {
		want := res.Path[(i+half)%total]
		got := board.Position{X: 5 - p.X, Y: 5 - p.Y} // point mirror in user coords
		require.Equal(s.T(), want, got, "index %d", i)
	}
}

// TestParityRejected: every symmetry mode needs its mirrored dimension(s)
// even, checked before any search.
func (s *SymmetricSuite) TestParityRejected() {
	cases := []struct {
		name string
		w, h int
		sym  board.Symmetry
	}{
		{"HorizontalOddWidth", 5, 6, board.SymHorizontal},
		{"VerticalOddHeight", 6, 5, board.SymVertical},
		{"PointOddWidth", 5, 6, board.SymPoint},
		{"PointOddHeight", 6, 5, board.SymPoint},
		{"PointOddBoth", 5, 5, board.SymPoint},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			b, err := board.New(tc.w, tc.h)
			require.NoError(s.T(), err)
			opts := search.DefaultOptions()
			opts.Symmetry = tc.sym
			_, err = search.Solve(b, 0, 0, opts)
			require.ErrorIs(s.T(), err, search.ErrSymmetryParity)
		})
	}
}

// TestExhaustedResidue: a fruitless symmetric search leaves exactly the
// start marking and its mirror reservation behind — never intermediate
// Visited or MirrorBlocked cells.
func (s *SymmetricSuite) TestExhaustedResidue() {
	// 2×2 admits no knight move at all, so the search exhausts instantly.
	b, err := board.New(2, 2)
	require.NoError(s.T(), err)

	opts := search.DefaultOptions()
	opts.Symmetry = board.SymPoint
	res, err := search.Solve(b, 0, 0, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Exhausted, res.Status)

	start, _ := b.Start(0, 0)
	mirror := b.Mirror(board.SymPoint, start)
	b.Interior(func(p board.Position, c board.Cell) {
		switch p {
		case start:
			require.Equal(s.T(), board.Cell(0), c)
		case mirror:
			require.Equal(s.T(), board.MirrorBlocked, c)
		default:
			require.Equal(s.T(), board.Empty, c, "residue at %v", p)
		}
	})
}

// TestTrialLimit: the budget aborts the symmetric loop the same way.
func (s *SymmetricSuite) TestTrialLimit() {
	b, err := board.New(8, 8)
	require.NoError(s.T(), err)

	opts := search.DefaultOptions()
	opts.Symmetry = board.SymPoint
	opts.Limit = 1
	res, err := search.Solve(b, 0, 0, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.LimitReached, res.Status)
	require.LessOrEqual(s.T(), res.Trials, int64(1+8))
}

// TestSymmetricSuite wires the suite into go test.
func TestSymmetricSuite(t *testing.T) {
	suite.Run(t, new(SymmetricSuite))
}
