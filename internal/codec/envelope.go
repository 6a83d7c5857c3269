// Package codec implements Component D: a versioned, length-prefixed
// binary encoding for domain.Index, stable enough to produce byte-identical
// output across rebuilds of the same input.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/jameslittle/stork/internal/domain"
)

// CurrentVersion is the version tag written into every new index artifact.
const CurrentVersion = "stork-3"

// ErrUnknownVersion is returned when an index's version tag has no
// registered decoder.
var ErrUnknownVersion = errors.New("unknown index version")

// Encode serializes idx into its full envelope+payload byte stream: a
// length-prefixed version tag string, followed by a length-prefixed,
// version-specific payload.
func Encode(idx *domain.Index) ([]byte, error) {
	payload, err := encodeV3(idx)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	var buf bytes.Buffer
	if err := writeFramed(&buf, []byte(CurrentVersion)); err != nil {
		return nil, fmt.Errorf("write version tag: %w", err)
	}
	if err := writeFramed(&buf, payload); err != nil {
		return nil, fmt.Errorf("write payload: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads the envelope and dispatches to the version-specific
// decoder named by its tag. Any bytes after the payload (reserved for
// future use) are ignored.
func Decode(data []byte) (*domain.Index, error) {
	r := bytes.NewReader(data)

	tagBytes, err := readFramed(r)
	if err != nil {
		return nil, fmt.Errorf("read version tag: %w", err)
	}

	payload, err := readFramed(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	switch string(tagBytes) {
	case "stork-3":
		return decodeV3(payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, tagBytes)
	}
}

func writeFramed(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readFramed(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
