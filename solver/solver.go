// Package solver finds a route from the entrance (0,0) to the exit
// (W-1,H-1) of a grid.Maze by depth-first search with backtracking.
//
// Key features:
//   - Fixed passage priority East, West, South, North: the same maze always
//     yields the same path.
//   - Dead ends are un-marked on backtrack, so a cell can be re-entered
//     through a different ancestor.
//   - Explicit frame stack: no recursion depth limit on large grids.
//   - Hooks: OnVisit and OnBacktrack with error aborts.
//   - Cancellation via context.Context.
//
// The search returns *a* path, not necessarily the shortest. On a perfect
// maze the two coincide because exactly one simple path exists.
//
// Complexity:
//
//   - Time:   O(W×H) on a perfect maze; exponential in the worst case on
//     mazes with many loops, because released cells may be re-explored.
//   - Memory: O(W×H) for visited flags and the frame stack.
//
// Errors:
//
//   - ErrMazeNil        if the maze is nil.
//   - context.Canceled  (wrapped) if ctx is done.
//   - any error returned by OnVisit or OnBacktrack (wrapped).
//
// An unreachable exit is not an error: Solve returns an empty path.
package solver

import (
	"fmt"

	"github.com/katalvlaran/lab/grid"
)

// frame is one level of the search stack: a cell and the index of the
// next direction in grid.Directions to try from it.
type frame struct {
	cell grid.Point
	next int
}

// walker encapsulates state during one search.
type walker struct {
	maze    *grid.Maze
	opts    Options
	visited []bool
	res     *Result
}

// Solve returns a path from m.Entrance() to m.Exit(), or an empty path when
// the exit cannot be reached.
func Solve(m *grid.Maze, opts ...Option) (grid.Path, error) {
	res, err := SolveDetailed(m, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// SolveDetailed runs the same search as Solve and also reports diagnostics.
// On a hook or context error it returns the partial Result alongside the error.
func SolveDetailed(m *grid.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		maze:    m,
		opts:    o,
		visited: make([]bool, m.Width()*m.Height()),
		res:     &Result{Path: grid.Path{}},
	}
	if err := w.search(); err != nil {
		return w.res, err
	}
	return w.res, nil
}

func (w *walker) index(p grid.Point) int {
	return w.maze.Index(p.X, p.Y)
}

// enter reports a cell entry to the hook and counts it.
func (w *walker) enter(p grid.Point) error {
	w.res.Visited++
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p); err != nil {
			return fmt.Errorf("solver: OnVisit hook at %v: %w", p, err)
		}
	}
	return nil
}

// search walks the maze from the entrance. The exit is never marked
// visited: reaching it ends the search immediately.
func (w *walker) search() error {
	start, exit := w.maze.Entrance(), w.maze.Exit()
	if err := w.enter(start); err != nil {
		return err
	}
	if start == exit {
		w.res.Path = grid.Path{start}
		return nil
	}

	w.visited[w.index(start)] = true
	stack := []frame{{cell: start}}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return fmt.Errorf("solver: %w", w.opts.Ctx.Err())
		default:
		}

		top := &stack[len(stack)-1]
		if top.next == len(grid.Directions) {
			// Dead end: release the cell so another route may pass through it.
			cell := top.cell
			w.visited[w.index(cell)] = false
			stack = stack[:len(stack)-1]
			w.res.Backtracks++
			if w.opts.OnBacktrack != nil {
				if err := w.opts.OnBacktrack(cell); err != nil {
					return fmt.Errorf("solver: OnBacktrack hook at %v: %w", cell, err)
				}
			}
			continue
		}
		d := grid.Directions[top.next]
		top.next++

		if !w.maze.HasPassage(top.cell, d) {
			continue
		}
		n := top.cell.Step(d)
		if !w.maze.InBounds(n.X, n.Y) || w.visited[w.index(n)] {
			continue
		}
		if err := w.enter(n); err != nil {
			return err
		}
		if n == exit {
			path := make(grid.Path, 0, len(stack)+1)
			for _, f := range stack {
				path = append(path, f.cell)
			}
			w.res.Path = append(path, n)
			return nil
		}
		w.visited[w.index(n)] = true
		stack = append(stack, frame{cell: n})
	}

	return nil
}
