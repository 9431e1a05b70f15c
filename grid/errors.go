package grid

import "errors"

var (
	// ErrInvalidDimension indicates a width or height below 1.
	ErrInvalidDimension = errors.New("grid: width and height must be at least 1")
	// ErrMaskCount indicates the mask slice does not hold exactly width×height cells.
	ErrMaskCount = errors.New("grid: mask count does not match dimensions")
	// ErrInvalidMask indicates a cell mask with bits outside MaskAll.
	ErrInvalidMask = errors.New("grid: mask has bits outside the four directions")
	// ErrOutOfBounds indicates a passage that leads off the grid.
	ErrOutOfBounds = errors.New("grid: passage leads outside the grid")
	// ErrAsymmetricPassage indicates a passage open on one side only.
	ErrAsymmetricPassage = errors.New("grid: passage is not symmetric")
	// ErrDisconnected indicates the passage graph has more than one component.
	ErrDisconnected = errors.New("grid: passage graph is disconnected")
	// ErrCycle indicates the passage graph contains a loop.
	ErrCycle = errors.New("grid: passage graph contains a cycle")
	// ErrInvalidPath indicates a path that does not walk open passages from entrance to exit.
	ErrInvalidPath = errors.New("grid: invalid path")
)
