// Package ptmerkletest contains a compliance suite
// for [ptmerkle.Reducer] configurations.
package ptmerkletest

import (
	"testing"

	"github.com/gordian-engine/prooftree/internal/pttest"
	"github.com/gordian-engine/prooftree/ptmerkle"
	"github.com/gordian-engine/prooftree/ptmerkle/ptsha256"
	"github.com/stretchr/testify/require"
)

type ReducerFactory func() *ptmerkle.Reducer

// TestReducerCompliance runs the properties that hold
// for every odd node rule and parallelism setting.
func TestReducerCompliance(t *testing.T, f ReducerFactory) {
	t.Run("empty input has no root", func(t *testing.T) {
		t.Parallel()

		r := f()
		require.Empty(t, r.Reduce(nil))
		require.Empty(t, r.Reduce([]string{}))
		require.Nil(t, r.Levels(nil))
	})

	t.Run("single digest is its own root", func(t *testing.T) {
		t.Parallel()

		d := ptsha256.Leaf([]byte("bar"))
		require.Equal(t, d, f().Reduce([]string{d}))
	})

	t.Run("pair is hashed left then right", func(t *testing.T) {
		t.Parallel()

		h1 := ptsha256.Leaf([]byte("left"))
		h2 := ptsha256.Leaf([]byte("right"))

		r := f()
		require.Equal(t, ptsha256.Node(h1, h2), r.Reduce([]string{h1, h2}))
		require.NotEqual(t, r.Reduce([]string{h1, h2}), r.Reduce([]string{h2, h1}))
	})

	t.Run("power of two builds a perfect tree", func(t *testing.T) {
		t.Parallel()

		ds := pttest.RandomDigestsForTest(t, 4)

		exp := ptsha256.Node(
			ptsha256.Node(ds[0], ds[1]),
			ptsha256.Node(ds[2], ds[3]),
		)
		require.Equal(t, exp, f().Reduce(ds))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		ds := pttest.RandomDigestsForTest(t, 37)

		r := f()
		require.Equal(t, r.Reduce(ds), r.Reduce(ds))
		require.Equal(t, r.Reduce(ds), f().Reduce(ds))
	})

	t.Run("input is not modified", func(t *testing.T) {
		t.Parallel()

		ds := pttest.RandomDigestsForTest(t, 9)
		orig := make([]string, len(ds))
		copy(orig, ds)

		_ = f().Reduce(ds)
		require.Equal(t, orig, ds)
	})

	t.Run("levels end at the root", func(t *testing.T) {
		t.Parallel()

		ds := pttest.RandomDigestsForTest(t, 11)

		r := f()
		levels := r.Levels(ds)
		require.Equal(t, ds, levels[0])

		// 11 -> 6 -> 3 -> 2 -> 1.
		require.Len(t, levels, 5)
		for i := 1; i < len(levels); i++ {
			require.Len(t, levels[i], (len(levels[i-1])+1)/2)
		}
		require.Equal(t, []string{r.Reduce(ds)}, levels[len(levels)-1])
	})
}
