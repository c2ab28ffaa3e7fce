package ptchunk_test

import (
	"testing"

	"github.com/gordian-engine/prooftree/internal/ptchunk"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, ptchunk.Chunk([]int{}, 2))
		require.Empty(t, ptchunk.Chunk[int](nil, 2))
	})

	t.Run("single element", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, [][]int{{1}}, ptchunk.Chunk([]int{1}, 2))
	})

	t.Run("even length", func(t *testing.T) {
		t.Parallel()

		require.Equal(
			t,
			[][]int{{1, 2}, {3, 4}, {5, 6}},
			ptchunk.Chunk([]int{1, 2, 3, 4, 5, 6}, 2),
		)
	})

	t.Run("odd length", func(t *testing.T) {
		t.Parallel()

		require.Equal(
			t,
			[][]int{{1, 2}, {3, 4}, {5, 6}, {7}},
			ptchunk.Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 2),
		)
	})

	t.Run("larger size", func(t *testing.T) {
		t.Parallel()

		require.Equal(
			t,
			[][]string{{"a", "b", "c"}, {"d", "e"}},
			ptchunk.Chunk([]string{"a", "b", "c", "d", "e"}, 3),
		)
	})

	t.Run("size larger than input", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, [][]int{{1, 2}}, ptchunk.Chunk([]int{1, 2}, 8))
	})
}

func TestChunk_appendDoesNotClobber(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3, 4}
	chunks := ptchunk.Chunk(in, 2)

	_ = append(chunks[0], 99)

	require.Equal(t, []int{1, 2, 3, 4}, in)
	require.Equal(t, []int{3, 4}, chunks[1])
}

func TestChunk_nonPositiveSizePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = ptchunk.Chunk([]int{1}, 0)
	})
	require.Panics(t, func() {
		_ = ptchunk.Chunk([]int{1}, -1)
	})
}
