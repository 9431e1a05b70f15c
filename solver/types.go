// Package solver defines options, sentinel errors and result types for
// depth-first maze solving, including cancellation and visit/backtrack hooks.
package solver

import (
	"context"
	"errors"

	"github.com/katalvlaran/lab/grid"
)

// ErrMazeNil is returned when a nil *grid.Maze is passed to Solve.
var ErrMazeNil = errors.New("solver: maze is nil")

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for a solve run.
// Hooks run inline on the solving goroutine and must be cheap.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked whenever the search enters a cell,
	// including the exit. Returning an error aborts the search.
	OnVisit func(p grid.Point) error

	// OnBacktrack, if non-nil, is invoked when a dead-end cell is released
	// and un-marked. Returning an error aborts the search.
	OnBacktrack func(p grid.Point) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked between search steps.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the cell-entry hook.
func WithOnVisit(fn func(p grid.Point) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the dead-end hook.
func WithOnBacktrack(fn func(p grid.Point) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// Result captures the outcome of a solve run.
type Result struct {
	// Path runs from the entrance to the exit; empty when the exit is unreachable.
	Path grid.Path

	// Visited counts cell entries. A cell released on backtrack and entered
	// again through another route is counted again.
	Visited int

	// Backtracks counts dead-end cells released by the search.
	Backtracks int
}

// Found reports whether the search reached the exit.
func (r *Result) Found() bool {
	return r != nil && !r.Path.Empty()
}
