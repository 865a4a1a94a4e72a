package pngchunk

import chunkcore "github.com/meigma/pngchunk/core"

// Errors re-exported from core.
var (
	// ErrInvalidLength is returned when a type code string is not exactly 4 bytes.
	ErrInvalidLength = chunkcore.ErrInvalidLength

	// ErrInvalidCharacters is returned when a type code string contains non-letters.
	ErrInvalidCharacters = chunkcore.ErrInvalidCharacters

	// ErrTruncated is returned when input ends before a chunk is complete.
	ErrTruncated = chunkcore.ErrTruncated

	// ErrChecksumMismatch is returned when a chunk's CRC does not match its content.
	ErrChecksumMismatch = chunkcore.ErrChecksumMismatch

	// ErrSignatureMismatch is returned when input does not start with the PNG signature.
	ErrSignatureMismatch = chunkcore.ErrSignatureMismatch

	// ErrChunkNotFound is returned when no chunk has the requested type.
	ErrChunkNotFound = chunkcore.ErrChunkNotFound

	// ErrNotUTF8 is returned when a payload requested as text is not valid UTF-8.
	ErrNotUTF8 = chunkcore.ErrNotUTF8

	// ErrChunkTooLarge is returned when a chunk exceeds the configured length limit.
	ErrChunkTooLarge = chunkcore.ErrChunkTooLarge
)
