package pngchunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/meigma/pngchunk/core/internal/sizing"
)

const (
	lengthFieldSize = 4
	crcFieldSize    = 4

	// ChunkOverhead is the number of framing bytes around a chunk payload:
	// length, type code, and CRC.
	ChunkOverhead = lengthFieldSize + TypeCodeSize + crcFieldSize
)

// Chunk is a typed, checksummed unit of data.
//
// A Chunk is immutable once constructed. Its CRC always covers the type code
// followed by the payload.
type Chunk struct {
	typ  TypeCode
	data []byte
	crc  uint32
}

// NewChunk creates a chunk and computes its CRC.
//
// The type code is not validated; a chunk may carry a code that fails
// TypeCode.IsValid. NewChunk copies data. Payloads must be smaller than
// 4 GiB to be framed; Length truncates larger ones.
func NewChunk(typ TypeCode, data []byte) *Chunk {
	owned := append([]byte(nil), data...)
	return &Chunk{
		typ:  typ,
		data: owned,
		crc:  checksum(typ, owned),
	}
}

// ParseChunk parses one chunk from the front of b.
//
// It returns the chunk and the number of bytes consumed. Bytes after the
// chunk are not inspected. ParseChunk returns ErrTruncated when b ends before
// the chunk does and ErrChecksumMismatch when the stored CRC is wrong.
// The returned chunk does not alias b.
func ParseChunk(b []byte) (*Chunk, int, error) {
	return parseChunk(b, 0)
}

// parseChunk implements ParseChunk; maxLen of zero disables the length limit.
func parseChunk(b []byte, maxLen uint32) (*Chunk, int, error) {
	if len(b) < lengthFieldSize+TypeCodeSize {
		return nil, 0, ErrTruncated
	}
	length := binary.BigEndian.Uint32(b[:lengthFieldSize])
	if maxLen > 0 && length > maxLen {
		return nil, 0, fmt.Errorf("%w: declared %d bytes, limit %d", ErrChunkTooLarge, length, maxLen)
	}
	dataLen, err := sizing.Uint32ToInt(length, ErrTruncated)
	if err != nil {
		return nil, 0, err
	}
	total, ok := sizing.AddInt(dataLen, ChunkOverhead)
	if !ok || total > len(b) {
		return nil, 0, ErrTruncated
	}

	var typ TypeCode
	copy(typ[:], b[lengthFieldSize:lengthFieldSize+TypeCodeSize])

	dataStart := lengthFieldSize + TypeCodeSize
	data := append([]byte(nil), b[dataStart:dataStart+dataLen]...)
	stored := binary.BigEndian.Uint32(b[dataStart+dataLen : total])

	if want := checksum(typ, data); stored != want {
		return nil, 0, fmt.Errorf("%w: %s stored %d, computed %d", ErrChecksumMismatch, typ, stored, want)
	}

	return &Chunk{typ: typ, data: data, crc: stored}, total, nil
}

// checksum computes CRC-32 (IEEE, as used by zlib and PNG) over typ followed by data.
func checksum(typ TypeCode, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, typ[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// Length returns the payload size in bytes.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data)) //nolint:gosec // payloads over 4 GiB cannot be framed; see NewChunk
}

// Type returns the chunk's type code.
func (c *Chunk) Type() TypeCode {
	return c.typ
}

// CRC returns the chunk's checksum.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Data returns the payload. The returned slice must be treated as immutable.
func (c *Chunk) Data() []byte {
	return c.data
}

// Text decodes the payload as UTF-8, returning ErrNotUTF8 if it is not valid.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrNotUTF8
	}
	return string(c.data), nil
}

// Size returns the number of bytes Bytes will produce.
func (c *Chunk) Size() int {
	return ChunkOverhead + len(c.data)
}

// Bytes returns the wire encoding: length, type code, payload, CRC.
func (c *Chunk) Bytes() []byte {
	return c.appendTo(make([]byte, 0, c.Size()))
}

// appendTo appends the wire encoding of c to dst.
func (c *Chunk) appendTo(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, c.Length())
	dst = append(dst, c.typ[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

// WriteTo implements io.WriterTo.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

// String renders the chunk for diagnostic output.
func (c *Chunk) String() string {
	var sb strings.Builder
	sb.WriteString("Chunk {\n")
	fmt.Fprintf(&sb, "  Length: %d\n", c.Length())
	fmt.Fprintf(&sb, "  Type: %s\n", c.typ)
	fmt.Fprintf(&sb, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&sb, "  Crc: %d\n", c.crc)
	sb.WriteString("}\n")
	return sb.String()
}
