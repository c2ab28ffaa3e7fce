package prooftree

import (
	"unicode/utf8"

	"github.com/gordian-engine/prooftree/ptmerkle/ptsha256"
)

// Leaf is a single document field in a [Tree].
//
// A Leaf is either revealed, holding the field's raw value,
// or redacted, holding only the hex digest of that value.
// Use [NewRevealedLeaf] or [NewRedactedLeaf] to create one;
// the zero Leaf has neither and cannot produce a digest.
//
// Leaves are values and are never modified after construction.
type Leaf struct {
	// Position orders leaves within a tree.
	// Positions need not be contiguous.
	Position int64

	// Key is the original field name.
	// It is informational only and does not affect any digest.
	Key string

	value  string
	digest string
}

// NewRevealedLeaf returns a revealed leaf holding value.
// An empty value cannot be revealed
// and results in a [MissingLeafDataError].
//
// Keys and values are UTF-8 text, the only encoding the JSON record form
// can carry; invalid UTF-8 in either results in an [InvalidUTF8Error].
// The digest of a revealed leaf is the SHA-256 of the UTF-8 bytes of value,
// with no further normalization.
func NewRevealedLeaf(position int64, key, value string) (Leaf, error) {
	if !utf8.ValidString(key) {
		return Leaf{}, InvalidUTF8Error{Key: key, Field: "key"}
	}
	if value == "" {
		return Leaf{}, MissingLeafDataError{Key: key}
	}
	if !utf8.ValidString(value) {
		return Leaf{}, InvalidUTF8Error{Key: key, Field: "value"}
	}

	return Leaf{
		Position: position,
		Key:      key,
		value:    value,
	}, nil
}

// NewRedactedLeaf returns a redacted leaf whose digest is the given hex digest.
// The digest must be 64 lowercase hex characters;
// an empty digest results in a [MissingLeafDataError]
// and any other malformed digest in an [InvalidDigestError].
// The key must be valid UTF-8, as for [NewRevealedLeaf].
func NewRedactedLeaf(position int64, key, digest string) (Leaf, error) {
	if !utf8.ValidString(key) {
		return Leaf{}, InvalidUTF8Error{Key: key, Field: "key"}
	}
	if digest == "" {
		return Leaf{}, MissingLeafDataError{Key: key}
	}
	if !ptsha256.ValidDigest(digest) {
		return Leaf{}, InvalidDigestError{Key: key, Digest: digest}
	}

	return Leaf{
		Position: position,
		Key:      key,
		digest:   digest,
	}, nil
}

// IsRevealed reports whether l holds its raw value.
func (l Leaf) IsRevealed() bool {
	return l.value != ""
}

// Value returns the raw value of a revealed leaf,
// and false for a redacted leaf.
func (l Leaf) Value() (string, bool) {
	return l.value, l.value != ""
}

// Digest returns the hex digest of l.
//
// A revealed leaf's digest is computed from its value on every call.
// A redacted leaf returns its stored digest.
// The zero Leaf returns a [MissingLeafDataError].
func (l Leaf) Digest() (string, error) {
	if l.value != "" {
		return ptsha256.Leaf([]byte(l.value)), nil
	}

	if l.digest != "" {
		return l.digest, nil
	}

	return "", MissingLeafDataError{Key: l.Key}
}

// Redact returns the redacted form of l, at the same position and key.
// Redacting an already redacted leaf returns it unchanged.
func (l Leaf) Redact() (Leaf, error) {
	d, err := l.Digest()
	if err != nil {
		return Leaf{}, err
	}

	return Leaf{
		Position: l.Position,
		Key:      l.Key,
		digest:   d,
	}, nil
}

// Record returns the serialization record of l, exactly as stored.
// No digest is computed, so a revealed leaf has a nil HashDigest.
// An empty Key is serialized as null.
func (l Leaf) Record() Record {
	r := Record{Position: l.Position}

	if l.Key != "" {
		r.Key = ptr(l.Key)
	}
	if l.value != "" {
		r.Value = ptr(l.value)
	}
	if l.digest != "" {
		r.HashDigest = ptr(l.digest)
	}

	return r
}

func ptr[T any](v T) *T {
	return &v
}
