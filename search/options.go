package search

import "github.com/katalvlaran/knighttour/board"

// Options holds configurable parameters for one Solve invocation.
// The zero value equals DefaultOptions(): open tour, Natural ordering,
// canonical offset order, no symmetry, no trial budget, no tracing.
type Options struct {
	// Mode selects the move-ordering heuristic.
	Mode Mode

	// Closed requires a Hamiltonian cycle: the tour's last cell must have
	// a knight move back to the start. Rejected (ErrClosedParity) when
	// both dimensions are odd.
	Closed bool

	// Symmetry constrains the tour to be invariant under the given
	// reflection. The engine then searches only half the board and mirrors
	// the other half. Symmetric solutions are closed by construction.
	Symmetry board.Symmetry

	// RandomOrder shuffles the knight-offset order once, at configuration
	// time. The per-step candidate ordering still follows Mode; only the
	// underlying offset sequence (and thus tie-breaking) changes.
	RandomOrder bool

	// Seed drives the RandomOrder shuffle. Seed==0 selects a fixed default
	// stream, keeping runs reproducible by default.
	Seed int64

	// Limit is the trial budget; 0 means unlimited. The budget is checked
	// once per engine step, so overshoot is bounded by one ordering call.
	Limit int64

	// OnStep, if non-nil, is invoked on every init/descend/backtrack step.
	// Positions are reported in user coordinates. Keep hooks cheap: they
	// run on the hot path.
	OnStep func(StepEvent)
}

// DefaultOptions returns an Options with:
//   - Natural move ordering
//   - open (non-closed) tour
//   - no symmetry constraint
//   - canonical offset order (no shuffle)
//   - unlimited trials, no step hook
func DefaultOptions() Options {
	return Options{
		Mode:        Natural,
		Closed:      false,
		Symmetry:    board.SymNone,
		RandomOrder: false,
		Seed:        0,
		Limit:       0,
		OnStep:      nil,
	}
}

// validate rejects infeasible configurations before any search step, per
// the error taxonomy in doc.go. Board-shape checks here are cheap parity
// tests; the start-cell check needs the board and runs in Solve.
func validate(b *board.Board, opts Options) error {
	switch opts.Mode {
	case Natural, NarrowestFirst, Centrifugal:
	default:
		return ErrUnknownMode
	}
	if opts.Limit < 0 {
		return ErrNegativeLimit
	}
	if opts.Closed && b.Width()%2 == 1 && b.Height()%2 == 1 {
		return ErrClosedParity
	}
	switch opts.Symmetry {
	case board.SymNone:
	case board.SymHorizontal:
		if b.Width()%2 == 1 {
			return ErrSymmetryParity
		}
	case board.SymVertical:
		if b.Height()%2 == 1 {
			return ErrSymmetryParity
		}
	case board.SymPoint:
		if b.Width()%2 == 1 || b.Height()%2 == 1 {
			return ErrSymmetryParity
		}
	}

	return nil
}
