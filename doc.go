// Package pngchunk reads, edits, and writes files framed as PNG chunks.
//
// The codec lives in the [core] subpackage; this package re-exports it and
// adds the file collaborators used by the nyxpng command.
//
// # Quick Start
//
// Hide a message in a PNG:
//
//	c, err := pngchunk.ReadFile("image.png")
//	if err != nil {
//	    return err
//	}
//	typ, err := pngchunk.ParseTypeCode("ruSt")
//	if err != nil {
//	    return err
//	}
//	c.Append(pngchunk.NewChunk(typ, []byte("hello")))
//	err = pngchunk.WriteFile("image_with_secret.png", c)
//
// Read it back:
//
//	chunk, ok := c.ChunkByType("ruSt")
//	if ok {
//	    msg, err := chunk.Text()
//	}
//
// Every chunk's CRC is verified on read. Chunks that are not edited are
// written back byte for byte.
package pngchunk
