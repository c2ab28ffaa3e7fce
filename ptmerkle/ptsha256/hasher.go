// Package ptsha256 contains the SHA-256 digest primitives
// used for leaves and interior nodes of a proof tree.
//
// Digests are exchanged as lowercase hex strings.
// Interior nodes hash the hex text of their children,
// not the decoded bytes.
package ptsha256

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// HashSize is the size of a raw SHA-256 sum in bytes.
	HashSize = sha256.Size

	// HexSize is the length of a hex-encoded digest.
	HexSize = 2 * HashSize
)

// Leaf returns the hex digest of a revealed leaf value.
func Leaf(value []byte) string {
	sum := sha256.Sum256(value)
	return hex.EncodeToString(sum[:])
}

// Node returns the hex digest of the parent of left and right.
// Both children are fed to a single hash state, left first.
func Node(left, right string) string {
	h := sha256.New()
	_, _ = h.Write([]byte(left))
	_, _ = h.Write([]byte(right))

	var dst [HashSize]byte
	return hex.EncodeToString(h.Sum(dst[:0]))
}

// Rehash returns the hex digest of d's text.
// It is the parent of an unpaired node in the legacy odd-node rule.
func Rehash(d string) string {
	return Leaf([]byte(d))
}

// ValidDigest reports whether s is a well-formed digest:
// exactly [HexSize] lowercase hex characters.
func ValidDigest(s string) bool {
	if len(s) != HexSize {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
