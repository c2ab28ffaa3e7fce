package ptmerkle

import (
	"fmt"

	"github.com/gordian-engine/prooftree/internal/ptchunk"
	"github.com/gordian-engine/prooftree/ptmerkle/ptsha256"
	"golang.org/x/sync/errgroup"
)

// OddNodeRule controls what happens to an unpaired trailing digest
// at a reduction level.
type OddNodeRule uint8

const (
	// OddNodeCarry moves the unpaired digest to the next level unchanged.
	OddNodeCarry OddNodeRule = iota

	// OddNodeRehash replaces the unpaired digest with [ptsha256.Rehash] of it.
	// This matches roots produced by older proof tree implementations
	// and should not be used for new documents.
	OddNodeRehash
)

func (r OddNodeRule) String() string {
	switch r {
	case OddNodeCarry:
		return "carry"
	case OddNodeRehash:
		return "rehash"
	default:
		return fmt.Sprintf("OddNodeRule(%d)", uint8(r))
	}
}

// DefaultParallelThreshold is the minimum number of pairs in a level
// before a [Reducer] with Parallelism > 1 hashes that level concurrently.
const DefaultParallelThreshold = 1024

// ReduceConfig is the configuration for [NewReducer].
// The zero value is a sequential reducer using [OddNodeCarry].
type ReduceConfig struct {
	OddNode OddNodeRule

	// Parallelism is the maximum number of goroutines
	// hashing pairs within a single level.
	// Values of 0 or 1 hash every level sequentially.
	Parallelism int

	// ParallelThreshold overrides [DefaultParallelThreshold] when positive.
	ParallelThreshold int
}

// Reducer computes Merkle roots from ordered digest lists.
// A Reducer is safe for concurrent use.
type Reducer struct {
	cfg ReduceConfig
}

// NewReducer returns a Reducer using the given configuration.
func NewReducer(cfg ReduceConfig) *Reducer {
	if cfg.OddNode > OddNodeRehash {
		panic(fmt.Errorf("BUG: unknown odd node rule %s", cfg.OddNode))
	}
	if cfg.Parallelism < 0 {
		panic(fmt.Errorf(
			"BUG: parallelism must not be negative (got %d)", cfg.Parallelism,
		))
	}

	return &Reducer{cfg: cfg}
}

var defaultReducer = NewReducer(ReduceConfig{})

// Reduce returns the root of digests using the default configuration.
// See [*Reducer.Reduce].
func Reduce(digests []string) string {
	return defaultReducer.Reduce(digests)
}

// Reduce returns the Merkle root of digests.
//
// An empty list has no root, reported as the empty string.
// A single digest is its own root, without any hashing.
// The digests slice is never modified.
func (r *Reducer) Reduce(digests []string) string {
	if len(digests) == 0 {
		return ""
	}

	level := digests
	for len(level) > 1 {
		level = r.nextLevel(level)
	}

	return level[0]
}

// Levels returns every level of the reduction of digests,
// starting with a copy of digests itself and ending with the one-element root level.
// An empty input returns nil.
func (r *Reducer) Levels(digests []string) [][]string {
	if len(digests) == 0 {
		return nil
	}

	first := make([]string, len(digests))
	copy(first, digests)
	levels := [][]string{first}

	level := first
	for len(level) > 1 {
		level = r.nextLevel(level)
		levels = append(levels, level)
	}

	return levels
}

// nextLevel returns a new slice holding the parents of level.
func (r *Reducer) nextLevel(level []string) []string {
	pairs := ptchunk.Chunk(level, 2)
	parents := make([]string, len(pairs))

	threshold := r.cfg.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}

	if r.cfg.Parallelism <= 1 || len(pairs) < threshold {
		for i, p := range pairs {
			parents[i] = r.parent(p)
		}
		return parents
	}

	// Each goroutine owns a contiguous span of output indices,
	// so the resulting order is identical to the sequential path.
	var eg errgroup.Group
	eg.SetLimit(r.cfg.Parallelism)

	span := (len(pairs) + r.cfg.Parallelism - 1) / r.cfg.Parallelism
	for start := 0; start < len(pairs); start += span {
		end := min(start+span, len(pairs))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				parents[i] = r.parent(pairs[i])
			}
			return nil
		})
	}

	// The workers never fail.
	_ = eg.Wait()

	return parents
}

func (r *Reducer) parent(pair []string) string {
	if len(pair) == 2 {
		return ptsha256.Node(pair[0], pair[1])
	}

	if r.cfg.OddNode == OddNodeRehash {
		return ptsha256.Rehash(pair[0])
	}

	return pair[0]
}
