// Package render turns solved knight's-tour boards into human-readable
// output: plain-text move matrices, static SVG images, and standalone
// HTML pages with an optional step-by-step animation.
//
// What:
//
//   - Text prints the board's move numbers as an aligned matrix, with
//     `.` for empty, `#` for blocked and `X` for mirror-reserved cells.
//   - SVG draws a checkerboard, coordinate labels, the tour path with a
//     start→end color gradient (or two-colored halves for symmetric
//     tours), start/end markers, and per-cell move numbers.
//   - HTML wraps the SVG in a self-contained page with a metadata footer;
//     Options.Animated swaps in a JS animation that replays the tour.
//
// Why:
//
//   - The search engine owns no I/O or formats; rendering is a thin
//     consumer of a Result path and the final board state.
//
// Complexity: all renderers are O(W×H + path length) string building.
package render
