// Package dfs defines types and options for depth-first descent over a
// tile grid, including cancellation, pre-/post-order hooks, depth and
// expansion limits.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/direction"
)

var (
	// ErrGraphNil is returned when a nil *gridgraph.GridGraph is passed to DFS.
	ErrGraphNil = errors.New("dfs: grid is nil")

	// ErrOptionViolation is returned for an invalid option value.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Policy supplies the per-frame neighbour order and topology.
	Policy *direction.Policy

	// OnVisit, if non-nil, is invoked immediately upon entering a cell
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(tileID, depth int) error

	// OnExit, if non-nil, is invoked when a cell is abandoned after all of
	// its directions were tried without reaching the goal (backtrack).
	OnExit func(tileID int)

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 enters only the start cell. Default is -1 (no limit).
	MaxDepth int

	// MaxVisited, if positive, stops after that many cells were entered.
	MaxVisited int

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - unrotated, bounded direction policy
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No expansion cap
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		Policy:     direction.NewPolicy(),
		OnVisit:    nil,
		OnExit:     nil,
		MaxDepth:   -1,
		MaxVisited: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy sets the direction/wrap policy. A nil policy is ignored.
func WithPolicy(p *direction.Policy) Option {
	return func(o *DFSOptions) {
		if p != nil {
			o.Policy = p
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(tileID, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a backtrack hook.
func WithOnExit(fn func(tileID int)) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start cell is entered; negative disables.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithMaxVisited caps the number of entered cells; n < 0 is an error.
func WithMaxVisited(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisited cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisited = n
	}
}
