// Package prooftree computes a deterministic Merkle root
// over the fields of a flat key/value document,
// and supports selective disclosure of those fields.
//
// A document holder builds a [Tree] with [FromDocument]
// and publishes its root.
// Later, the holder can call [*Tree.Disclose] to redact every field
// except the ones to reveal, and hand the verifier the resulting [Record] list.
// Redacted fields carry only the SHA-256 digest of their value,
// so the verifier can rebuild the tree with [FromRecords]
// and confirm the root with [*Tree.IsValid] or a [Verifier]
// without learning the redacted values.
//
// Leaf digests are reduced to the root by package [ptmerkle].
package prooftree
