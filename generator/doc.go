// Package generator builds perfect mazes by randomized recursive backtracking.
//
// Starting from one cell, the carver visits the four neighbors in a freshly
// shuffled order, opens a passage into every neighbor that is still
// unvisited and descends into it before trying the next direction. Because
// each cell is entered exactly once and joined to exactly one earlier cell,
// the passages form a spanning tree of the grid: every cell is reachable and
// there are no loops.
//
// The backtracking stack is an explicit slice of frames rather than the Go
// call stack, so a 2000×2000 serpentine maze needs no deep recursion. Frame
// order, shuffle order and RNG consumption match the recursive formulation
// exactly: the same seed yields the same maze either way.
//
// Options:
//
//   - WithSeed(seed)   deterministic RNG; seed 0 maps to DefaultSeed.
//   - WithRand(r)      caller-owned RNG.
//   - WithStart(p)     fixed starting cell instead of a random one.
//   - WithOnCarve(fn)  hook invoked after every carved passage.
//
// Complexity:
//
//   - Time:   O(W×H).
//   - Memory: O(W×H) for masks, visited flags and the frame stack.
//
// Errors:
//
//   - grid.ErrInvalidDimension  if width or height is below 1.
//   - ErrStartOutOfBounds       if WithStart names a cell outside the grid.
package generator
