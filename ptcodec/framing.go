package ptcodec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/golang/snappy"
	"github.com/gordian-engine/prooftree"
)

const (
	rawEncoding    byte = 0
	snappyEncoding byte = 1
)

// headerSize is one encoding byte followed by a big endian uint32 payload length.
const headerSize = 5

// DefaultMaxPayloadSize is the payload limit
// for a [Decoder] whose MaxPayloadSize is zero.
const DefaultMaxPayloadSize = 64 << 20

// Encoder writes framed record lists.
//
// Each frame is a one byte encoding header,
// the big endian uint32 length of the payload,
// and the payload: the JSON record list, raw or snappy-compressed,
// whichever is smaller.
//
// The zero value is ready to use.
// An Encoder reuses its buffers between calls
// and must not be used concurrently.
type Encoder struct {
	// Snappy output, including space for the header.
	encBuf []byte

	// Header for the raw path.
	rawHeader [headerSize]byte
}

// Encode writes one frame containing recs to w.
func (e *Encoder) Encode(w io.Writer, recs []prooftree.Record) error {
	j, err := MarshalRecords(recs)
	if err != nil {
		return err
	}

	rawLen, err := frameLength(len(j))
	if err != nil {
		return err
	}

	maxEnc := headerSize + snappy.MaxEncodedLen(len(j))
	if maxEnc < headerSize {
		// MaxEncodedLen returns -1 when the input is too large.
		return fmt.Errorf("record list of %d bytes is too large to encode", len(j))
	}
	if cap(e.encBuf) < maxEnc {
		e.encBuf = make([]byte, maxEnc)
	} else {
		e.encBuf = e.encBuf[:maxEnc]
	}

	res := snappy.Encode(e.encBuf[headerSize:], j)

	// Only use the compressed form if it actually saves bytes.
	if len(res) < len(j) {
		e.encBuf[0] = snappyEncoding
		binary.BigEndian.PutUint32(e.encBuf[1:headerSize], uint32(len(res)))

		if _, err := w.Write(e.encBuf[:headerSize+len(res)]); err != nil {
			return fmt.Errorf("failed to write snappy record frame: %w", err)
		}
		return nil
	}

	e.rawHeader[0] = rawEncoding
	binary.BigEndian.PutUint32(e.rawHeader[1:], rawLen)
	if _, err := w.Write(e.rawHeader[:]); err != nil {
		return fmt.Errorf("failed to write raw record frame header: %w", err)
	}
	if _, err := w.Write(j); err != nil {
		return fmt.Errorf("failed to write raw record frame: %w", err)
	}

	return nil
}

// frameLength returns n as a frame payload length,
// or an error if n does not fit the uint32 length header.
func frameLength(n int) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf(
			"record list of %d bytes exceeds frame limit of %d", n, uint64(math.MaxUint32),
		)
	}
	return uint32(n), nil
}

// Decoder reads frames written by an [Encoder].
//
// The zero value is ready to use.
// A Decoder reuses its buffers between calls
// and must not be used concurrently.
type Decoder struct {
	// MaxPayloadSize bounds both the framed payload
	// and the decompressed JSON size.
	// Zero means [DefaultMaxPayloadSize].
	MaxPayloadSize int

	encBuf []byte
	decBuf []byte
}

// Decode reads one frame from r and returns its records.
// At a clean end of stream, Decode returns [io.EOF].
func (d *Decoder) Decode(r io.Reader) ([]prooftree.Record, error) {
	maxSize := d.MaxPayloadSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPayloadSize
	}

	var h [headerSize]byte
	if _, err := io.ReadFull(r, h[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read record frame header: %w", err)
	}

	sz := binary.BigEndian.Uint32(h[1:])
	if uint64(sz) > uint64(maxSize) {
		return nil, fmt.Errorf(
			"record frame of %d bytes exceeds limit of %d", sz, maxSize,
		)
	}

	if cap(d.encBuf) < int(sz) {
		d.encBuf = make([]byte, sz)
	} else {
		d.encBuf = d.encBuf[:sz]
	}
	if _, err := io.ReadFull(r, d.encBuf); err != nil {
		return nil, fmt.Errorf("failed to read record frame payload: %w", err)
	}

	switch h[0] {
	case rawEncoding:
		return UnmarshalRecords(d.encBuf)

	case snappyEncoding:
		decSz, err := snappy.DecodedLen(d.encBuf)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate snappy-decoded record length: %w", err)
		}
		if decSz > maxSize {
			return nil, fmt.Errorf(
				"decoded record list of %d bytes exceeds limit of %d", decSz, maxSize,
			)
		}

		db, err := snappy.Decode(d.decBuf, d.encBuf)
		if err != nil {
			return nil, fmt.Errorf("failed to decode snappy record frame: %w", err)
		}

		d.decBuf = db

		return UnmarshalRecords(db)

	default:
		return nil, fmt.Errorf("unknown record frame header byte 0x%x", h[0])
	}
}
