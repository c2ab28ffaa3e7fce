package prooftree

import (
	"github.com/bits-and-blooms/bitset"
)

// Disclose returns a new Tree in which only the leaves with the given keys
// remain revealed; every other leaf is redacted.
// The returned tree has the same root as t.
//
// Every key must belong to a leaf of t, or an [UnknownKeyError] is returned.
// Asking to reveal a leaf that is already redacted
// results in an [AlreadyRedactedError].
func (t *Tree) Disclose(revealKeys ...string) (*Tree, error) {
	mask := bitset.New(uint(len(t.leaves)))

	for _, k := range revealKeys {
		found := false
		for i, l := range t.leaves {
			if l.Key == k {
				mask.Set(uint(i))
				found = true
			}
		}
		if !found {
			return nil, UnknownKeyError{Key: k}
		}
	}

	return t.DiscloseMask(mask)
}

// DiscloseMask is like [*Tree.Disclose],
// keeping the i'th leaf revealed when bit i of reveal is set.
// Bits beyond the number of leaves are ignored,
// and a nil reveal set redacts every leaf.
func (t *Tree) DiscloseMask(reveal *bitset.BitSet) (*Tree, error) {
	if reveal == nil {
		reveal = bitset.New(0)
	}

	leaves := make([]Leaf, len(t.leaves))

	for i, l := range t.leaves {
		if reveal.Test(uint(i)) {
			if !l.IsRevealed() {
				return nil, AlreadyRedactedError{Key: l.Key}
			}
			leaves[i] = l
			continue
		}

		r, err := l.Redact()
		if err != nil {
			return nil, err
		}
		leaves[i] = r
	}

	return &Tree{leaves: leaves}, nil
}
