package pngchunk

import (
	"bytes"
	"io"
	"iter"
	"slices"
	"strings"
)

// Signature is the fixed 8-byte prefix of every container.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Container is a signature followed by an ordered sequence of chunks.
//
// Insertion order is serialization order. A Container owns its chunks and is
// not safe for concurrent use without external synchronization.
type Container struct {
	chunks []*Chunk
}

// New returns a container with the given chunks, in order.
func New(chunks ...*Chunk) *Container {
	return &Container{chunks: slices.Clone(chunks)}
}

// Parse decodes a complete container.
//
// Parse returns ErrSignatureMismatch if b does not begin with Signature.
// It then parses chunks until b is exhausted; a chunk that fails to parse is
// reported as a *ChunkError wrapping ErrTruncated, ErrChecksumMismatch, or
// ErrChunkTooLarge. Trailing bytes that do not form a full chunk are an error.
func Parse(b []byte, opts ...Option) (*Container, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.log()

	if !bytes.HasPrefix(b, Signature[:]) {
		return nil, ErrSignatureMismatch
	}

	c := &Container{}
	off := len(Signature)
	for off < len(b) {
		chunk, n, err := parseChunk(b[off:], cfg.maxChunkLength)
		if err != nil {
			log.Debug("chunk parse failed", "index", len(c.chunks), "offset", off, "error", err)
			return nil, &ChunkError{Index: len(c.chunks), Offset: off, Err: err}
		}
		log.Debug("parsed chunk", "index", len(c.chunks), "offset", off, "type", chunk.typ.String(), "length", chunk.Length())
		c.chunks = append(c.chunks, chunk)
		off += n
	}

	log.Debug("parsed container", "chunks", len(c.chunks), "bytes", len(b))
	return c, nil
}

// Append adds chunk to the end of the container.
// Multiple chunks may share a type code.
func (c *Container) Append(chunk *Chunk) {
	c.chunks = append(c.chunks, chunk)
}

// ChunkByType returns the first chunk whose type code text equals typ.
func (c *Container) ChunkByType(typ string) (*Chunk, bool) {
	i := c.indexOf(typ)
	if i < 0 {
		return nil, false
	}
	return c.chunks[i], true
}

// ChunksByType returns an iterator over every chunk whose type code text equals typ.
func (c *Container) ChunksByType(typ string) iter.Seq[*Chunk] {
	return func(yield func(*Chunk) bool) {
		for _, chunk := range c.chunks {
			if chunk.typ.String() != typ {
				continue
			}
			if !yield(chunk) {
				return
			}
		}
	}
}

// RemoveFirst removes and returns the first chunk whose type code text equals typ.
// Remaining chunks keep their relative order. It returns ErrChunkNotFound if
// no chunk matches.
func (c *Container) RemoveFirst(typ string) (*Chunk, error) {
	i := c.indexOf(typ)
	if i < 0 {
		return nil, ErrChunkNotFound
	}
	chunk := c.chunks[i]
	c.chunks = slices.Delete(c.chunks, i, i+1)
	return chunk, nil
}

func (c *Container) indexOf(typ string) int {
	return slices.IndexFunc(c.chunks, func(chunk *Chunk) bool {
		return chunk.typ.String() == typ
	})
}

// Len returns the number of chunks.
func (c *Container) Len() int {
	return len(c.chunks)
}

// Chunks returns an iterator over the chunks in order.
func (c *Container) Chunks() iter.Seq[*Chunk] {
	return slices.Values(c.chunks)
}

// Size returns the number of bytes Bytes will produce.
func (c *Container) Size() int {
	n := len(Signature)
	for _, chunk := range c.chunks {
		n += chunk.Size()
	}
	return n
}

// Bytes returns the signature followed by each chunk's encoding in order.
func (c *Container) Bytes() []byte {
	buf := make([]byte, 0, c.Size())
	buf = append(buf, Signature[:]...)
	for _, chunk := range c.chunks {
		buf = chunk.appendTo(buf)
	}
	return buf
}

// WriteTo implements io.WriterTo.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

// String renders every chunk for diagnostic output.
func (c *Container) String() string {
	var sb strings.Builder
	sb.WriteString("Container {\n")
	for _, chunk := range c.chunks {
		for line := range strings.Lines(chunk.String()) {
			sb.WriteString("  ")
			sb.WriteString(line)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
