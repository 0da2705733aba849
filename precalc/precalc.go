package precalc

import (
	"encoding/binary"
	"io"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/pathfinding"
)

// Stats counts cache outcomes since construction or the last Invalidate.
type Stats struct {
	Hits   int
	Misses int
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger routes Debug lines to l. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// Cache holds the last computed result per fingerprint. Safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	log     *logrus.Logger
	results map[uint64]gridgraph.Result
	stats   Stats
}

// New returns an empty cache. Without WithLogger it logs nowhere.
func New(opts ...Option) *Cache {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	c := &Cache{
		log:     silent,
		results: make(map[uint64]gridgraph.Result),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Resolve returns the stored result for req when its fingerprint was seen
// before and recomputes through pathfinding.Run otherwise. Shuffling
// configs are never cached since each call must draw a fresh order.
// Errors are returned as-is and never stored.
func (c *Cache) Resolve(req pathfinding.Request, rng *rand.Rand) (gridgraph.Result, error) {
	fp := Fingerprint(req)
	fields := logrus.Fields{
		"algorithm":   req.Config.Algorithm.String(),
		"fingerprint": fp,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !req.Config.RandomDirection {
		if res, ok := c.results[fp]; ok {
			c.stats.Hits++
			c.log.WithFields(fields).Debug("precalc: hit")
			return clone(res), nil
		}
	}

	c.stats.Misses++
	res, err := pathfinding.Run(req, rng)
	if err != nil {
		c.log.WithFields(fields).WithError(err).Debug("precalc: run failed")
		return res, err
	}
	if !req.Config.RandomDirection {
		c.results[fp] = clone(res)
	}
	fields["visited"] = len(res.Visited)
	fields["path"] = len(res.Path)
	fields["reached"] = res.Reached
	c.log.WithFields(fields).Debug("precalc: recomputed")

	return res, nil
}

// Invalidate drops every stored result and resets Stats.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = make(map[uint64]gridgraph.Result)
	c.stats = Stats{}
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Len reports how many results are stored.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// Fingerprint hashes everything Run reads: extents, current id, config and
// every descriptor in order. Any goal move, terrain edit or config change
// yields a new value.
func Fingerprint(req pathfinding.Request) uint64 {
	h := xxh3.New()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}

	put(int64(req.Rows))
	put(int64(req.Cols))
	put(int64(req.CurrentID))
	put(int64(req.Config.Algorithm))
	put(int64(req.Config.DirectionOffset))
	put(boolBits(req.Config.RandomDirection, req.Config.WorldWrap))
	put(int64(len(req.Tiles)))
	for _, d := range req.Tiles {
		put(int64(d.ID))
		put(int64(d.Row))
		put(int64(d.Col))
		put(int64(d.Kind))
	}

	return h.Sum64()
}

func boolBits(random, wrap bool) int64 {
	var v int64
	if random {
		v |= 1
	}
	if wrap {
		v |= 2
	}
	return v
}

// clone copies the slices so callers cannot mutate a stored result.
func clone(r gridgraph.Result) gridgraph.Result {
	out := r
	out.Visited = copyIDs(r.Visited)
	out.Path = copyIDs(r.Path)
	return out
}

func copyIDs(ids []int) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
