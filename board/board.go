package board

// Board owns the cell state of one search run: a width×height interior of
// Empty cells inside a 2-cell Blocked border. It is constructed once per
// run, mutated in place by the engine (mark on descent, revert on
// backtrack), and read-only output once a tour is confirmed.
//
// Board performs no validation inside Mark/Unmark; the engine's protocol
// guarantees that only Empty cells are marked and only previously marked
// cells are reverted.
type Board struct {
	width, height int
	cells         [][]Cell // cells[y][x], physical coordinates
}

// New allocates a bordered board with all interior cells Empty.
// Returns ErrNonPositiveSize if width or height ≤ 0.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNonPositiveSize
	}
	bw, bh := width+2*Inset, height+2*Inset
	cells := make([][]Cell, bh)
	for y := 0; y < bh; y++ {
		cells[y] = make([]Cell, bw)
		for x := 0; x < bw; x++ {
			cells[y][x] = Blocked
		}
	}
	for y := Inset; y < height+Inset; y++ {
		for x := Inset; x < width+Inset; x++ {
			cells[y][x] = Empty
		}
	}

	return &Board{width: width, height: height, cells: cells}, nil
}

// Width returns the logical (interior) width.
func (b *Board) Width() int { return b.width }

// Height returns the logical (interior) height.
func (b *Board) Height() int { return b.height }

// Size returns the number of interior cells, width·height.
func (b *Board) Size() int { return b.width * b.height }

// Start converts 0-indexed user coordinates to a physical Position.
// Returns ErrStartOutOfBounds when (x,y) is outside [0,W)×[0,H).
func (b *Board) Start(x, y int) (Position, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Position{}, ErrStartOutOfBounds
	}

	return Position{X: x + Inset, Y: y + Inset}, nil
}

// At returns the cell state at p. Valid for any position produced by
// applying a knight offset to an interior position. Complexity: O(1).
func (b *Board) At(p Position) Cell { return b.cells[p.Y][p.X] }

// IsEmpty reports whether the cell at p is visitable. Complexity: O(1).
func (b *Board) IsEmpty(p Position) bool { return b.cells[p.Y][p.X] == Empty }

// Mark writes move number n into the cell at p. Complexity: O(1).
func (b *Board) Mark(p Position, n int) { b.cells[p.Y][p.X] = Cell(n) }

// Unmark reverts the cell at p to Empty. Complexity: O(1).
func (b *Board) Unmark(p Position) { b.cells[p.Y][p.X] = Empty }

// Block writes MirrorBlocked into the cell at p (symmetric search only).
func (b *Board) Block(p Position) { b.cells[p.Y][p.X] = MirrorBlocked }

// Center returns the physical coordinates of the interior's geometric
// center, used by the centrifugal move ordering.
func (b *Board) Center() (cx, cy float64) {
	return float64(b.width-1)/2 + Inset, float64(b.height-1)/2 + Inset
}

// Interior calls fn for every interior cell in row-major order.
func (b *Board) Interior(fn func(p Position, c Cell)) {
	for y := Inset; y < b.height+Inset; y++ {
		for x := Inset; x < b.width+Inset; x++ {
			fn(Position{X: x, Y: y}, b.cells[y][x])
		}
	}
}

// ExtractPath scans the interior and returns the tour in move-number order
// (physical positions). Returns ErrIncompletePath unless every move number
// in [0, W·H) occurs exactly once — only call after a confirmed solution.
// Complexity: O(W×H).
func (b *Board) ExtractPath() ([]Position, error) {
	total := b.Size()
	path := make([]Position, total)
	seen := make([]bool, total)

	var bad bool
	b.Interior(func(p Position, c Cell) {
		if !c.Visited() {
			bad = true

			return
		}
		n := int(c)
		if n >= total || seen[n] {
			bad = true

			return
		}
		seen[n] = true
		path[n] = p
	})
	if bad {
		return nil, ErrIncompletePath
	}

	return path, nil
}
