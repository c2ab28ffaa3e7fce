package pttest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"testing"
)

// RandomDataForTest returns a byte slice of size sz
// containing pseudorandom data, derived from a seed based on the test name.
func RandomDataForTest(t *testing.T, sz int) []byte {
	// Sha256 happens to be the right size for the chacha8 seed,
	// and this fits well anyway since that means
	// we are not limited by the length of any particular test name.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([]byte, sz)

	if _, err := chacha.Read(out); err != nil {
		panic(err)
	}

	return out
}

// RandomDocumentForTest returns a document with n fields
// whose keys and values are derived from the test name.
// Every value is non-empty.
func RandomDocumentForTest(t *testing.T, n int) map[string]string {
	data := RandomDataForTest(t, n*8)

	doc := make(map[string]string, n)
	for i := range n {
		// The index prefix keeps keys unique even if the random suffixes collide.
		doc[fmt.Sprintf("field%04d", i)] = hex.EncodeToString(data[i*8 : (i+1)*8])
	}

	return doc
}

// RandomDigestsForTest returns n well-formed hex digests
// derived from the test name.
func RandomDigestsForTest(t *testing.T, n int) []string {
	data := RandomDataForTest(t, n*sha256.Size)

	out := make([]string, n)
	for i := range out {
		out[i] = hex.EncodeToString(data[i*sha256.Size : (i+1)*sha256.Size])
	}

	return out
}
