// Package lab generates perfect mazes on a rectangular grid, finds the route
// from the top-left cell to the bottom-right cell, and renders both.
//
// 🚀 What is lab?
//
//	A small, deterministic maze toolkit:
//		• grid       — immutable maze model: cells with 4-bit passage masks
//		• generator  — randomized recursive backtracking, seeded RNG, explicit stack
//		• solver     — depth-first search with fixed East/West/South/North priority
//		• render     — line geometry, ASCII, PNG and SVG output
//		• config     — .env / LAB_* settings for the command
//		• cmd/lab    — generate once, solve once, write one picture
//
// ✨ Guarantees
//
//   - Every generated maze is a spanning tree: connected, no loops,
//     exactly W·H−1 passages.
//   - Passages are symmetric: grid.FromMasks rejects anything else.
//   - Same seed and size ⇒ same maze; same maze ⇒ same path.
//   - No recursion: both algorithms run on explicit stacks, so grid size is
//     bounded by memory, not goroutine stack depth.
//
// Quick ASCII example (3×2, path marked with *):
//
//	+---+---+---+
//	| *     |   |
//	+   +---+   +
//	| *   *   * |
//	+---+---+---+
//
//	go get github.com/katalvlaran/lab
package lab
