package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/direction"
)

// Sentinel errors returned by AStar.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGraph = errors.New("astar: grid is nil")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost from per-axis cell deltas. The
// deltas are already reduced for wraparound when the policy wraps.
type Heuristic func(dRow, dCol int) float64

// Options configures AStar.
//
// Policy     – neighbour order and topology. Default: unrotated, bounded.
// Heuristic  – remaining-cost estimate. Default: Euclidean.
// MaxVisited – stop after this many expansions. 0 = no cap.
// OnVisit    – invoked with every expanded tile id, in order.
type Options struct {
	Policy     *direction.Policy
	Heuristic  Heuristic
	MaxVisited int
	OnVisit    func(tileID int)

	err error
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// WithPolicy sets the direction/wrap policy. A nil policy is ignored.
func WithPolicy(p *direction.Policy) Option {
	return func(o *Options) {
		if p != nil {
			o.Policy = p
		}
	}
}

// WithHeuristic replaces the heuristic. A nil heuristic is an error.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic cannot be nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithAggressive switches to the Aggressive heuristic.
func WithAggressive() Option {
	return func(o *Options) {
		o.Heuristic = Aggressive
	}
}

// WithMaxVisited caps the number of expansions; n < 0 is an error.
func WithMaxVisited(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisited cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisited = n
	}
}

// WithOnVisit registers a callback run for every expanded tile.
func WithOnVisit(fn func(tileID int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DefaultOptions returns the Euclidean heuristic over an unrotated bounded
// policy with no cap.
func DefaultOptions() Options {
	return Options{
		Policy:    direction.NewPolicy(),
		Heuristic: Euclidean,
		OnVisit:   func(int) {},
	}
}
