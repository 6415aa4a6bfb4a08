package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/knighttour/board"
)

// Board palette and layout, unchanged across renderers.
const (
	lightSquare  = "#f0d9b5"
	darkSquare   = "#c59873"
	startColor   = "#22c55e"
	endColor     = "#ef4444"
	pathAColor   = "#2563eb"
	pathBColor   = "#dc2626"
	connectColor = "#9333ea"

	// margin reserves space for the coordinate labels.
	margin = 30

	// DefaultCellSize is the square edge in pixels when Options.CellSize
	// is left zero.
	DefaultCellSize = 50
)

// Meta carries run information for the HTML footer. Zero values are
// omitted from the output.
type Meta struct {
	Mode    string
	Trials  int64
	Elapsed time.Duration
	Seed    int64
}

// Options holds tunable parameters for SVG/HTML rendering.
type Options struct {
	// CellSize is the square edge in pixels; 0 means DefaultCellSize.
	CellSize int
	// Closed draws the dashed last→first edge of a Hamiltonian cycle.
	Closed bool
	// Symmetry switches the path to two-colored halves with a dashed
	// connector between them.
	Symmetry board.Symmetry
	// Animated selects the JS replay in HTML output instead of the static
	// path.
	Animated bool
	// Meta feeds the HTML metadata footer.
	Meta Meta
}

// DefaultOptions returns Options with DefaultCellSize and everything else
// off.
func DefaultOptions() Options {
	return Options{CellSize: DefaultCellSize}
}

// canvas precomputes the pixel geometry shared by all SVG fragments.
type canvas struct {
	w, h int // board dimensions in cells
	cell int
}

func newCanvas(w, h int, opts Options) canvas {
	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}

	return canvas{w: w, h: h, cell: cell}
}

func (c canvas) svgWidth() int  { return margin + c.w*c.cell }
func (c canvas) svgHeight() int { return margin + c.h*c.cell }

// center returns the pixel center of cell (x,y).
func (c canvas) center(p board.Position) (float64, float64) {
	cx := float64(margin) + float64(p.X)*float64(c.cell) + float64(c.cell)/2
	cy := float64(p.Y)*float64(c.cell) + float64(c.cell)/2

	return cx, cy
}

// interpolateColor blends startColor→endColor at ratio ∈ [0,1].
func interpolateColor(ratio float64) string {
	r := int(0x22 + (0xef-0x22)*ratio)
	g := int(0xc5 - (0xc5-0x44)*ratio)
	b := int(0x5e - (0x5e-0x44)*ratio)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// grid emits the checkerboard rectangles.
func (c canvas) grid(sb *strings.Builder) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			color := darkSquare
			if (x+y)%2 == 0 {
				color = lightSquare
			}
			fmt.Fprintf(sb,
				"    <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\" />\n",
				margin+x*c.cell, y*c.cell, c.cell, c.cell, color)
		}
	}
}

// coordinates emits the axis labels: x along the bottom, y down the left.
func (c canvas) coordinates(sb *strings.Builder) {
	for x := 0; x < c.w; x++ {
		fmt.Fprintf(sb,
			"    <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-size=\"12\" fill=\"#333\">%d</text>\n",
			margin+x*c.cell+c.cell/2, c.h*c.cell+20, x)
	}
	for y := 0; y < c.h; y++ {
		fmt.Fprintf(sb,
			"    <text x=\"10\" y=\"%d\" text-anchor=\"middle\" font-size=\"12\" fill=\"#333\">%d</text>\n",
			y*c.cell+c.cell/2+4, y)
	}
}

// line emits one path segment.
func (c canvas) line(sb *strings.Builder, from, to board.Position, color, extra string) {
	x1, y1 := c.center(from)
	x2, y2 := c.center(to)
	fmt.Fprintf(sb,
		"    <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"4\" stroke-linecap=\"round\"%s />\n",
		x1, y1, x2, y2, color, extra)
}

// pathStatic emits the full tour with a start→end gradient, plus the
// dashed closing edge for closed tours.
func (c canvas) pathStatic(sb *strings.Builder, path []board.Position, closed bool) {
	total := len(path)
	for i := 0; i+1 < total; i++ {
		ratio := 0.0
		if total > 1 {
			ratio = float64(i) / float64(total-1)
		}
		c.line(sb, path[i], path[i+1], interpolateColor(ratio), "")
	}
	if closed && total > 0 {
		c.line(sb, path[total-1], path[0], endColor, " stroke-dasharray=\"8,4\"")
	}
}

// pathSymmetric emits the two mirrored halves in distinct colors with a
// dashed connector between them.
func (c canvas) pathSymmetric(sb *strings.Builder, path []board.Position) {
	total := len(path)
	half := total / 2
	for i := 0; i+1 < half; i++ {
		c.line(sb, path[i], path[i+1], pathAColor, "")
	}
	if half > 0 && half < total {
		c.line(sb, path[half-1], path[half], connectColor, " stroke-dasharray=\"8,4\"")
	}
	for i := half; i+1 < total; i++ {
		c.line(sb, path[i], path[i+1], pathBColor, "")
	}
}

// markers emits the start (green) and end (red) circles.
func (c canvas) markers(sb *strings.Builder, path []board.Position) {
	if len(path) == 0 {
		return
	}
	r := c.cell / 6
	sx, sy := c.center(path[0])
	fmt.Fprintf(sb,
		"    <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%d\" fill=\"%s\" opacity=\"0.5\" />\n",
		sx, sy, r, startColor)
	ex, ey := c.center(path[len(path)-1])
	fmt.Fprintf(sb,
		"    <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%d\" fill=\"%s\" opacity=\"0.5\" />\n",
		ex, ey, r, endColor)
}

// moveNumbers emits one centered label per visited cell.
func (c canvas) moveNumbers(sb *strings.Builder, path []board.Position) {
	font := c.cell / 3
	for i, p := range path {
		cx, cy := c.center(p)
		fmt.Fprintf(sb,
			"    <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-size=\"%d\" font-weight=\"bold\" fill=\"#1e293b\">%d</text>\n",
			cx, cy+float64(font)/3, font, i)
	}
}

// SVG renders a complete static image of the tour. path is in user
// coordinates ordered by move number; w and h are the board dimensions.
func SVG(path []board.Position, w, h int, opts Options) string {
	c := newCanvas(w, h, opts)

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"<svg id=\"board\" width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		c.svgWidth(), c.svgHeight()+20)

	sb.WriteString("  <!-- Grid -->\n")
	c.grid(&sb)
	sb.WriteString("  <!-- Coordinates -->\n")
	c.coordinates(&sb)
	sb.WriteString("  <!-- Path -->\n  <g id=\"path-lines\">\n")
	if opts.Symmetry != board.SymNone {
		c.pathSymmetric(&sb, path)
	} else {
		c.pathStatic(&sb, path, opts.Closed)
	}
	sb.WriteString("  </g>\n")
	sb.WriteString("  <!-- Markers -->\n")
	c.markers(&sb, path)
	sb.WriteString("  <!-- Move numbers -->\n  <g id=\"move-numbers\">\n")
	c.moveNumbers(&sb, path)
	sb.WriteString("  </g>\n</svg>\n")

	return sb.String()
}
