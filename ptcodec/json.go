// Package ptcodec encodes [prooftree.Record] lists for storage or transport.
//
// [MarshalRecords] and [UnmarshalRecords] use the JSON record schema:
//
//	{"key": string|null, "value": string|null, "position": int, "hash_digest": string|null}
//
// [Encoder] and [Decoder] frame that JSON for streams,
// compressing it with snappy when that is smaller.
package ptcodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gordian-engine/prooftree"
)

// wireRecord mirrors prooftree.Record
// so that a missing position can be told apart from position 0.
type wireRecord struct {
	Key        *string `json:"key"`
	Value      *string `json:"value"`
	Position   *int64  `json:"position"`
	HashDigest *string `json:"hash_digest"`
}

// MarshalRecords returns the JSON array encoding of recs.
// A nil slice encodes as an empty array.
//
// JSON would silently replace invalid UTF-8 with U+FFFD,
// changing the digest of a revealed value,
// so any record with a string field that is not valid UTF-8 is an error.
func MarshalRecords(recs []prooftree.Record) ([]byte, error) {
	if recs == nil {
		recs = []prooftree.Record{}
	}

	for i, r := range recs {
		for _, f := range []*string{r.Key, r.Value, r.HashDigest} {
			if f != nil && !utf8.ValidString(*f) {
				return nil, fmt.Errorf(
					"record %d at position %d contains invalid UTF-8", i, r.Position,
				)
			}
		}
	}

	b, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return b, nil
}

// UnmarshalRecords decodes a JSON array of records.
//
// Every record must carry an integer position.
// Unknown fields and trailing data are rejected.
// Whether each record has a value or digest is not checked here;
// that happens when the records are loaded with [prooftree.FromRecords].
func UnmarshalRecords(b []byte) ([]prooftree.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var wire []wireRecord
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after record list")
	}

	out := make([]prooftree.Record, len(wire))
	for i, w := range wire {
		if w.Position == nil {
			return nil, fmt.Errorf("record %d has no position", i)
		}

		out[i] = prooftree.Record{
			Key:        w.Key,
			Value:      w.Value,
			Position:   *w.Position,
			HashDigest: w.HashDigest,
		}
	}

	return out, nil
}
