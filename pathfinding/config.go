package pathfinding

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilepath/direction"
)

var (
	// ErrUnknownAlgorithm indicates a name or value outside the Algorithm set.
	ErrUnknownAlgorithm = errors.New("pathfinding: unknown algorithm")

	// ErrBadOffset indicates a direction offset outside 0..7.
	ErrBadOffset = errors.New("pathfinding: direction offset out of range")
)

// Config selects the strategy and the neighbour policy for one call. The
// caller owns it and may change it between calls; Run treats it as
// read-only.
type Config struct {
	Algorithm       Algorithm `yaml:"algorithm" json:"algorithm"`
	DirectionOffset int       `yaml:"direction_offset" json:"direction_offset"`
	RandomDirection bool      `yaml:"random_direction" json:"random_direction"`
	WorldWrap       bool      `yaml:"world_wrap" json:"world_wrap"`
}

// DefaultConfig is Dijkstra, no rotation, no shuffle, wraparound on.
func DefaultConfig() Config {
	return Config{
		Algorithm:       Dijkstra,
		DirectionOffset: 0,
		RandomDirection: false,
		WorldWrap:       true,
	}
}

// Validate rejects unknown algorithms and offsets outside 0..7.
func (c Config) Validate() error {
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(c.Algorithm))
	}
	if c.DirectionOffset < 0 || c.DirectionOffset >= direction.Count {
		return fmt.Errorf("%w: %d", ErrBadOffset, c.DirectionOffset)
	}

	return nil
}

// RotateOffset moves the offset by delta, cycling modulo 8.
func (c *Config) RotateOffset(delta int) {
	c.DirectionOffset = ((c.DirectionOffset+delta)%direction.Count + direction.Count) % direction.Count
}

// Policy builds the direction policy for c. rng feeds the shuffle and may
// be nil, in which case a shuffling policy seeds itself from the clock.
func (c Config) Policy(rng *rand.Rand) *direction.Policy {
	return direction.NewPolicy(
		direction.WithOffset(c.DirectionOffset),
		direction.WithRandom(c.RandomDirection),
		direction.WithWrap(c.WorldWrap),
		direction.WithRand(rng),
	)
}
