package prooftree

// Record is the serialized form of a [Leaf].
//
// Value is present when the leaf is revealed;
// HashDigest is present when the leaf is redacted.
// Absent fields are encoded as JSON null.
type Record struct {
	Key        *string `json:"key"`
	Value      *string `json:"value"`
	Position   int64   `json:"position"`
	HashDigest *string `json:"hash_digest"`
}

// RevealedRecord returns a Record for a revealed field.
// Pass an empty key to omit it.
func RevealedRecord(position int64, key, value string) Record {
	r := Record{Position: position, Value: ptr(value)}
	if key != "" {
		r.Key = ptr(key)
	}
	return r
}

// RedactedRecord returns a Record for a redacted field.
// Pass an empty key to omit it.
func RedactedRecord(position int64, key, digest string) Record {
	r := Record{Position: position, HashDigest: ptr(digest)}
	if key != "" {
		r.Key = ptr(key)
	}
	return r
}

// Leaf converts r to a [Leaf].
//
// A non-empty Value always wins:
// the leaf is revealed and any HashDigest in r is ignored,
// so a stale or false digest can never stand in for a disclosed value.
// Otherwise a non-empty HashDigest produces a redacted leaf.
// A record with neither results in a [MissingLeafDataError].
func (r Record) Leaf() (Leaf, error) {
	var key string
	if r.Key != nil {
		key = *r.Key
	}

	if r.Value != nil && *r.Value != "" {
		return NewRevealedLeaf(r.Position, key, *r.Value)
	}

	if r.HashDigest != nil && *r.HashDigest != "" {
		return NewRedactedLeaf(r.Position, key, *r.HashDigest)
	}

	return Leaf{}, MissingLeafDataError{Key: key}
}
