// Package grid defines the maze data model: a rectangular grid of cells,
// each holding a 4-bit passage mask, plus the coordinate, direction and
// path types that the generator, solver and renderer share.
//
// What:
//
//   - Direction enumerates East, West, South, North with a fixed bit each
//     (1, 2, 4, 8) and a fixed opposite.
//   - Mask is the per-cell passage bitmask; a set bit means "open".
//   - Maze is an immutable width×height grid of masks in row-major order.
//   - Path is an ordered list of cell coordinates.
//
// Why:
//
//   - A single immutable representation lets generation, solving and drawing
//     stay independent: the generator produces a Maze, everything else reads it.
//   - FromMasks is the only constructor and it enforces passage symmetry, so a
//     *Maze can never hold a one-way passage.
//
// Complexity:
//
//   - FromMasks:           O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - ToGraph / Verify:    O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension:   width or height below 1.
//   - ErrMaskCount:          mask slice length differs from width×height.
//   - ErrInvalidMask:        a mask uses bits above the four direction bits.
//   - ErrOutOfBounds:        a passage leads off the grid.
//   - ErrAsymmetricPassage:  a passage is open on one side only.
//   - ErrDisconnected / ErrCycle: Verify found a non-tree passage graph.
//   - ErrInvalidPath:        ValidatePath rejected a path.
package grid
