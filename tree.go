package prooftree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/prooftree/ptmerkle"
)

// Tree is an ordered collection of leaves
// from which a Merkle root is computed.
//
// Build a Tree from a full document with [FromDocument],
// or from a possibly redacted record list with [FromRecords].
// Once built, a Tree is never modified,
// so its methods are safe to call concurrently.
type Tree struct {
	// Sorted ascending by position.
	leaves []Leaf
}

// FromDocument returns a Tree with one revealed leaf per field of doc.
//
// Keys are sorted in ascending byte order and given positions 0 through n-1,
// so identical documents always produce identical trees
// regardless of map iteration order.
// Every value must be non-empty; an empty value results in a [MissingLeafDataError].
func FromDocument(doc map[string]string) (*Tree, error) {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	leaves := make([]Leaf, len(keys))
	for i, k := range keys {
		l, err := NewRevealedLeaf(int64(i), k, doc[k])
		if err != nil {
			return nil, err
		}
		leaves[i] = l
	}

	return &Tree{leaves: leaves}, nil
}

// LoadConfig is the configuration for [FromRecords].
type LoadConfig struct {
	// By default, two records sharing a position are rejected
	// with a [DuplicatePositionError].
	// When AllowDuplicatePositions is set,
	// records at the same position keep their relative input order.
	AllowDuplicatePositions bool
}

// FromRecords returns a Tree built from serialized leaf records,
// which may mix revealed and redacted leaves.
//
// The input order is not trusted:
// records are stably sorted by position before building the tree.
// The recs slice is not modified.
func FromRecords(recs []Record, cfg LoadConfig) (*Tree, error) {
	sorted := slices.Clone(recs)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(a.Position, b.Position)
	})

	leaves := make([]Leaf, len(sorted))
	for i, r := range sorted {
		l, err := r.Leaf()
		if err != nil {
			return nil, fmt.Errorf("failed to load record at position %d: %w", r.Position, err)
		}

		if i > 0 && !cfg.AllowDuplicatePositions && leaves[i-1].Position == l.Position {
			return nil, DuplicatePositionError{
				Position:  l.Position,
				FirstKey:  leaves[i-1].Key,
				SecondKey: l.Key,
			}
		}

		leaves[i] = l
	}

	return &Tree{leaves: leaves}, nil
}

// Len returns the number of leaves in t.
func (t *Tree) Len() int {
	return len(t.leaves)
}

// Leaf returns the i'th leaf in position order.
func (t *Tree) Leaf(i int) Leaf {
	return t.leaves[i]
}

// Leaves returns a copy of t's leaves in position order.
func (t *Tree) Leaves() []Leaf {
	return slices.Clone(t.leaves)
}

// Records returns the serialized form of every leaf, in position order.
func (t *Tree) Records() []Record {
	out := make([]Record, len(t.leaves))
	for i, l := range t.leaves {
		out[i] = l.Record()
	}
	return out
}

// Redacted returns a bit set with bit i set when the i'th leaf is redacted.
func (t *Tree) Redacted() *bitset.BitSet {
	bs := bitset.New(uint(len(t.leaves)))
	for i, l := range t.leaves {
		if !l.IsRevealed() {
			bs.Set(uint(i))
		}
	}
	return bs
}

// Digests returns the digest of every leaf, in position order.
func (t *Tree) Digests() ([]string, error) {
	out := make([]string, len(t.leaves))
	for i, l := range t.leaves {
		d, err := l.Digest()
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Root returns the Merkle root of t, reduced with [ptmerkle.Reduce].
// A tree without leaves has no root, reported as the empty string.
func (t *Tree) Root() (string, error) {
	return t.rootWith(nil)
}

// RootWith is like [*Tree.Root] but reduces leaf digests with r.
func (t *Tree) RootWith(r *ptmerkle.Reducer) (string, error) {
	if r == nil {
		panic(fmt.Errorf("BUG: RootWith called with nil reducer"))
	}
	return t.rootWith(r)
}

func (t *Tree) rootWith(r *ptmerkle.Reducer) (string, error) {
	ds, err := t.Digests()
	if err != nil {
		return "", err
	}

	if r == nil {
		return ptmerkle.Reduce(ds), nil
	}
	return r.Reduce(ds), nil
}

// IsValid reports whether t's root equals expectedRoot.
// A mismatch is not an error.
// A tree without leaves is never valid, whatever expectedRoot is.
func (t *Tree) IsValid(expectedRoot string) (bool, error) {
	if len(t.leaves) == 0 {
		return false, nil
	}

	root, err := t.Root()
	if err != nil {
		return false, err
	}

	return root == expectedRoot, nil
}
