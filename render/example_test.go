// File: render/example_test.go
package render_test

import (
	"fmt"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/render"
)

// ExampleText renders a hand-marked board: move numbers where the knight
// has been, dots where it has not.
func ExampleText() {
	b, _ := board.New(3, 2)
	for i, xy := range [][2]int{{0, 0}, {2, 1}, {1, 0}} {
		p, _ := b.Start(xy[0], xy[1])
		b.Mark(p, i)
	}

	fmt.Print(render.Text(b))

	// Output:
	//   0   2   .
	//   .   .   1
}
