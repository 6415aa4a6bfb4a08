package board

// Mirror returns the reflection of p under sym, computed in bordered-grid
// coordinates. With Inset=2 the interior spans [2, W+1]×[2, H+1], so the
// horizontal reflection of x is (W+3)−x and the vertical reflection of y
// is (H+3)−y. SymNone returns p unchanged.
//
// Mirror is a pure function of geometry: it carries no state and is never
// cached on the Board. Complexity: O(1).
func (b *Board) Mirror(sym Symmetry, p Position) Position {
	switch sym {
	case SymHorizontal:
		return Position{X: b.width + 2*Inset - 1 - p.X, Y: p.Y}
	case SymVertical:
		return Position{X: p.X, Y: b.height + 2*Inset - 1 - p.Y}
	case SymPoint:
		return Position{X: b.width + 2*Inset - 1 - p.X, Y: b.height + 2*Inset - 1 - p.Y}
	default:
		return p
	}
}

// OnAxis reports whether p is its own mirror under sym — i.e. it lies on
// the reflection axis (or at the point-symmetry center). Such a cell has
// no distinct mirror counterpart and cannot start a symmetric search.
func (b *Board) OnAxis(sym Symmetry, p Position) bool {
	return sym != SymNone && b.Mirror(sym, p) == p
}
