// Package board defines core types and sentinel errors for the bordered
// knight's-tour grid.
package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrNonPositiveSize indicates width or height ≤ 0.
	ErrNonPositiveSize = errors.New("board: width and height must be positive")
	// ErrStartOutOfBounds indicates a start cell outside the interior.
	ErrStartOutOfBounds = errors.New("board: start position out of bounds")
	// ErrIncompletePath indicates move numbers on the board do not form a
	// permutation of [0, width·height).
	ErrIncompletePath = errors.New("board: board does not hold a complete tour")
)

// Inset is the guard-border width on each side of the interior. Two cells
// suffice: no knight offset exceeds 2 in either coordinate, so every move
// from an interior cell stays inside the physical grid.
const Inset = 2

// Cell is the state of one grid cell. Negative values are the special
// states below; any value ≥ 0 is the move number of a visited cell.
type Cell int

const (
	// MirrorBlocked marks the reserved mirror counterpart of a visited cell
	// during a symmetric search. Occupied for candidate filtering, but
	// distinguishable from Visited when rendering or reverting.
	MirrorBlocked Cell = -3
	// Blocked marks a guard-border sentinel cell.
	Blocked Cell = -2
	// Empty marks a visitable interior cell.
	Empty Cell = -1
)

// Visited reports whether c carries a move number.
func (c Cell) Visited() bool { return c >= 0 }

// Position is a physical grid coordinate, already offset by Inset.
// User-facing coordinates are obtained via User.
type Position struct {
	X, Y int
}

// User converts p to 0-indexed user coordinates (interior origin).
func (p Position) User() Position {
	return Position{X: p.X - Inset, Y: p.Y - Inset}
}

// Symmetry selects the reflection applied to mirror positions during a
// symmetric search. SymNone disables mirroring.
type Symmetry int

const (
	// SymNone requests no symmetry constraint.
	SymNone Symmetry = iota
	// SymHorizontal reflects x about the board's vertical centerline.
	SymHorizontal
	// SymVertical reflects y about the board's horizontal centerline.
	SymVertical
	// SymPoint rotates 180° about the board center.
	SymPoint
)

// String returns a short human-readable name for the symmetry mode.
func (s Symmetry) String() string {
	switch s {
	case SymHorizontal:
		return "horizontal"
	case SymVertical:
		return "vertical"
	case SymPoint:
		return "point"
	default:
		return "none"
	}
}
