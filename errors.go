package prooftree

import (
	"fmt"
	"strconv"
)

// MissingLeafDataError is returned when a leaf has neither
// a revealed value nor a hash digest,
// so no digest can be computed for it.
//
// It is a data integrity failure and retrying will not help.
type MissingLeafDataError struct {
	Key string
}

func (e MissingLeafDataError) Error() string {
	return "leaf " + strconv.Quote(e.Key) + " is missing raw value and hash digest"
}

// InvalidDigestError is returned when a redacted leaf's hash digest
// is not exactly 64 lowercase hex characters.
type InvalidDigestError struct {
	Key    string
	Digest string
}

func (e InvalidDigestError) Error() string {
	return fmt.Sprintf("leaf %q has malformed hash digest %q", e.Key, e.Digest)
}

// InvalidUTF8Error is returned when a leaf's key or value
// is not valid UTF-8 text.
type InvalidUTF8Error struct {
	Key string

	// Field is "key" or "value".
	Field string
}

func (e InvalidUTF8Error) Error() string {
	return fmt.Sprintf("leaf %q has %s that is not valid UTF-8", e.Key, e.Field)
}

// DuplicatePositionError is returned from [FromRecords]
// when two records share a position
// and [LoadConfig.AllowDuplicatePositions] is not set.
type DuplicatePositionError struct {
	Position int64

	// Keys of the first two records found at Position.
	FirstKey, SecondKey string
}

func (e DuplicatePositionError) Error() string {
	return fmt.Sprintf(
		"leaves %q and %q share position %d",
		e.FirstKey, e.SecondKey, e.Position,
	)
}

// UnknownKeyError is returned from [*Tree.Disclose]
// when asked to reveal a key that no leaf in the tree has.
type UnknownKeyError struct {
	Key string
}

func (e UnknownKeyError) Error() string {
	return "no leaf with key " + strconv.Quote(e.Key)
}

// AlreadyRedactedError is returned when disclosure asks to reveal a leaf
// whose value is no longer present in the tree.
type AlreadyRedactedError struct {
	Key string
}

func (e AlreadyRedactedError) Error() string {
	return "leaf " + strconv.Quote(e.Key) + " is already redacted"
}
