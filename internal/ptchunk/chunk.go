// Package ptchunk partitions ordered slices into fixed-size groups.
package ptchunk

import "fmt"

// Chunk returns consecutive groups of size elements from s.
// The final group is shorter when len(s) is not a multiple of size.
// An empty s yields a nil result.
//
// The groups alias s, with their capacity clipped
// so that appending to one group never overwrites the next.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		panic(fmt.Errorf(
			"BUG: chunk size must be positive (got %d)", size,
		))
	}

	if len(s) == 0 {
		return nil
	}

	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		out = append(out, s[start:end:end])
	}

	return out
}
