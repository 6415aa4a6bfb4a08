// Package knighttour finds knight's-tour paths — Hamiltonian paths of
// knight moves on a rectangular grid — by exhaustive backtracking with
// pluggable move-ordering heuristics.
//
// 🚀 What is knighttour?
//
//	A single-run combinatorial search engine that brings together:
//		• Sentinel-bordered board: O(1) occupancy checks, no bounds tests
//		• Iterative DFS over an explicit stack of search situations
//		• Move ordering: Natural, NarrowestFirst (Warnsdorff), Centrifugal
//		• Closed tours (Hamiltonian cycles) and symmetric tours
//		  (horizontal / vertical / 180° point reflection)
//		• Injected trial statistics and a configurable trial budget
//
// ✨ Why choose knighttour?
//
//   - Deterministic – fixed move order ⇒ identical path and trial count
//   - Explicit stack – no host call-stack limits on large boards
//   - Extensible – add a step hook (OnStep) for tracing or animation
//
// Under the hood, everything is organized in three subpackages:
//
//	board/  — bordered grid, cell states, mirror geometry
//	search/ — engine, move ordering, statistics, symmetric variant
//	render/ — text boards and SVG/HTML visualization
//
// Quick ASCII example (3×3 board inside its 2-cell guard border):
//
//	# # # # # # #
//	# # # # # # #
//	# # . . . # #
//	# # . . . # #   ← any knight offset from an interior cell
//	# # . . . # #     still lands inside the bordered grid
//	# # # # # # #
//	# # # # # # #
//
// Dive into README-style examples in each package's example_test.go.
//
//	go get github.com/katalvlaran/knighttour
package knighttour
