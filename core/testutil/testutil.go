// Package testutil builds raw chunk and container bytes for tests.
//
// Helpers work on plain byte slices so they can be used from tests inside the
// core package without an import cycle.
package testutil

import (
	"encoding/binary"
	"hash/crc32"
	"math/rand/v2"
)

// PNGSignature is the container signature.
var PNGSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// RawChunk encodes a chunk with an explicit length and CRC, neither of which
// is checked against data.
func RawChunk(length uint32, typ string, data []byte, crc uint32) []byte {
	out := binary.BigEndian.AppendUint32(nil, length)
	out = append(out, typ...)
	out = append(out, data...)
	return binary.BigEndian.AppendUint32(out, crc)
}

// CRC computes the chunk checksum over typ followed by data.
func CRC(typ string, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write([]byte(typ))
	h.Write(data)
	return h.Sum32()
}

// ValidChunk encodes a well-formed chunk.
func ValidChunk(typ string, data []byte) []byte {
	return RawChunk(uint32(len(data)), typ, data, CRC(typ, data)) //nolint:gosec // test payloads are small
}

// Container prefixes the concatenated chunk encodings with the signature.
func Container(chunks ...[]byte) []byte {
	out := append([]byte(nil), PNGSignature...)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// FlipBit returns a copy of b with bit number bit (0 = LSB of b[0]) inverted.
func FlipBit(b []byte, bit int) []byte {
	out := append([]byte(nil), b...)
	out[bit/8] ^= 1 << (bit % 8)
	return out
}

// RandomPayload returns n deterministic pseudo-random bytes for seed.
func RandomPayload(seed uint64, n int) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)) //nolint:gosec // reproducible test data
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.UintN(256))
	}
	return out
}
