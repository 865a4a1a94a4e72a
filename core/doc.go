// Package pngchunk implements the PNG chunk framing as a general container
// codec.
//
// A container is the 8-byte PNG signature followed by chunks. Each chunk is
//
//	length(4, big-endian) type(4) data(length) crc(4, big-endian)
//
// where crc is CRC-32 over type followed by data. Parse verifies every CRC;
// Bytes re-encodes the container so that unmodified chunks round-trip byte
// for byte. Chunk contents are never interpreted.
package pngchunk
