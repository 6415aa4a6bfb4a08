package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knighttour/board"
)

// Text renders the interior of b as an aligned move-number matrix, one row
// per line. Visited cells show their move number; empty, blocked, and
// mirror-reserved cells show `.`, `#`, and `X`. Complexity: O(W×H).
func Text(b *board.Board) string {
	var sb strings.Builder
	cells := make([]string, 0, b.Width())

	row := board.Inset
	b.Interior(func(p board.Position, c board.Cell) {
		if p.Y != row {
			sb.WriteString(strings.Join(cells, " "))
			sb.WriteByte('\n')
			cells = cells[:0]
			row = p.Y
		}
		switch {
		case c.Visited():
			cells = append(cells, fmt.Sprintf("%3d", int(c)))
		case c == board.Blocked:
			cells = append(cells, "  #")
		case c == board.MirrorBlocked:
			cells = append(cells, "  X")
		default:
			cells = append(cells, "  .")
		}
	})
	sb.WriteString(strings.Join(cells, " "))
	sb.WriteByte('\n')

	return sb.String()
}
