package pngchunk

import chunkcore "github.com/meigma/pngchunk/core"

// Re-export types from core for public API.
type (
	// TypeCode is the 4-byte tag identifying a chunk's purpose.
	TypeCode = chunkcore.TypeCode

	// Chunk is a typed, checksummed unit of data.
	Chunk = chunkcore.Chunk

	// Container is a signature followed by an ordered sequence of chunks.
	Container = chunkcore.Container

	// Option configures parsing.
	Option = chunkcore.Option

	// ChunkError records a chunk that failed to parse and its position.
	ChunkError = chunkcore.ChunkError
)

// Re-export constructors and parsers.
var (
	// TypeCodeFromBytes returns a type code without validation.
	TypeCodeFromBytes = chunkcore.TypeCodeFromBytes

	// ParseTypeCode parses and validates a 4-letter type code.
	ParseTypeCode = chunkcore.ParseTypeCode

	// NewChunk creates a chunk and computes its CRC.
	NewChunk = chunkcore.NewChunk

	// ParseChunk parses one chunk from the front of a buffer.
	ParseChunk = chunkcore.ParseChunk

	// New returns a container holding the given chunks.
	New = chunkcore.New

	// Parse decodes a complete container.
	Parse = chunkcore.Parse

	// WithMaxChunkLength limits the declared payload length accepted by Parse.
	WithMaxChunkLength = chunkcore.WithMaxChunkLength

	// WithLogger sets the logger used for parse diagnostics.
	WithLogger = chunkcore.WithLogger
)

// Signature is the fixed 8-byte prefix of every container.
var Signature = chunkcore.Signature
