package pngchunk

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidLength is returned when a type code string is not exactly 4 bytes.
	ErrInvalidLength = errors.New("pngchunk: type code must be 4 bytes")

	// ErrInvalidCharacters is returned when a type code string contains non-alphabetic bytes.
	ErrInvalidCharacters = errors.New("pngchunk: type code must be ASCII letters")

	// ErrTruncated is returned when the input ends before a chunk is complete.
	ErrTruncated = errors.New("pngchunk: truncated chunk")

	// ErrChecksumMismatch is returned when a chunk's stored CRC does not match its content.
	ErrChecksumMismatch = errors.New("pngchunk: checksum mismatch")

	// ErrSignatureMismatch is returned when the input does not start with the PNG signature.
	ErrSignatureMismatch = errors.New("pngchunk: signature mismatch")

	// ErrChunkNotFound is returned when no chunk has the requested type.
	ErrChunkNotFound = errors.New("pngchunk: chunk not found")

	// ErrNotUTF8 is returned when a chunk payload requested as text is not valid UTF-8.
	ErrNotUTF8 = errors.New("pngchunk: payload is not valid UTF-8")

	// ErrChunkTooLarge is returned when a chunk declares a length above the configured limit.
	ErrChunkTooLarge = errors.New("pngchunk: chunk too large")
)

// ChunkError records a chunk that failed to parse and where it sits in the input.
type ChunkError struct {
	// Index is the zero-based position of the chunk in the container.
	Index int

	// Offset is the byte offset of the chunk's length field.
	Offset int

	Err error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d at offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
