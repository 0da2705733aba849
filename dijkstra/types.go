// Package dijkstra defines configuration options and sentinel errors for
// Dijkstra's algorithm over an adapted tile grid.
//
// Options:
//
//	– Policy:     neighbour order and wraparound (direction.Policy).
//	– MaxVisited: optional cap on expansions; 0 means no cap.
//	– OnVisit:    hook called with each tile id as it is expanded.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided grid pointer is nil.
//	– ErrOptionViolation if an option carries an invalid value.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(gg,
//	    dijkstra.WithPolicy(direction.NewPolicy(direction.WithWrap(true))),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Visited, res.Path, res.Cost)
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/direction"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: grid is nil")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Policy     – neighbour order and topology. Default: unrotated, bounded.
// MaxVisited – stop after this many expansions (Reached=false). 0 = no cap.
// OnVisit    – invoked with the tile id of every expanded node, in order.
type Options struct {
	Policy     *direction.Policy
	MaxVisited int
	OnVisit    func(tileID int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithPolicy sets the direction/wrap policy. A nil policy is ignored.
func WithPolicy(p *direction.Policy) Option {
	return func(o *Options) {
		if p != nil {
			o.Policy = p
		}
	}
}

// WithMaxVisited caps the number of expansions.
//
//	n > 0:  stop after n expanded nodes
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
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

// DefaultOptions returns Options with an unrotated bounded policy, no cap
// and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Policy:     direction.NewPolicy(),
		MaxVisited: 0,
		OnVisit:    func(int) {},
	}
}
