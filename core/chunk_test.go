package pngchunk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/pngchunk/core/testutil"
)

const (
	testMessage = "This is where your secret message will be!"
	testCRC     = uint32(2882656334)
)

func testChunkBytes(crc uint32) []byte {
	return testutil.RawChunk(uint32(len(testMessage)), "RuSt", []byte(testMessage), crc)
}

func TestNewChunk(t *testing.T) {
	t.Parallel()

	chunk := NewChunk(MustParseTypeCode("RuSt"), []byte(testMessage))
	assert.Equal(t, uint32(42), chunk.Length())
	assert.Equal(t, testCRC, chunk.CRC())
	assert.Equal(t, "RuSt", chunk.Type().String())
}

func TestNewChunk_CopiesData(t *testing.T) {
	t.Parallel()

	data := []byte("mutable")
	chunk := NewChunk(MustParseTypeCode("RuSt"), data)
	data[0] = 'X'
	assert.Equal(t, []byte("mutable"), chunk.Data())
}

func TestNewChunk_AcceptsInvalidTypeCode(t *testing.T) {
	t.Parallel()

	chunk := NewChunk(MustParseTypeCode("Rust"), nil)
	assert.False(t, chunk.Type().IsValid())
	assert.Equal(t, testutil.CRC("Rust", nil), chunk.CRC())
}

func TestParseChunk(t *testing.T) {
	t.Parallel()

	raw := testChunkBytes(testCRC)
	require.Len(t, raw, 54)

	chunk, n, err := ParseChunk(raw)
	require.NoError(t, err)
	assert.Equal(t, len(raw), n)
	assert.Equal(t, uint32(42), chunk.Length())
	assert.Equal(t, "RuSt", chunk.Type().String())
	assert.Equal(t, testCRC, chunk.CRC())

	text, err := chunk.Text()
	require.NoError(t, err)
	assert.Equal(t, testMessage, text)
}

func TestParseChunk_ChecksumMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := ParseChunk(testChunkBytes(2882656333))
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestParseChunk_Truncated(t *testing.T) {
	t.Parallel()

	raw := testChunkBytes(testCRC)

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: nil},
		{name: "partial length", input: raw[:3]},
		{name: "missing type", input: raw[:6]},
		{name: "partial data", input: raw[:20]},
		{name: "missing crc", input: raw[:len(raw)-1]},
		{name: "length exceeds input", input: testutil.RawChunk(0xFFFFFFFF, "RuSt", []byte("x"), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ParseChunk(tt.input)
			require.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestParseChunk_LeavesTrailingBytes(t *testing.T) {
	t.Parallel()

	raw := testChunkBytes(testCRC)
	input := append(append([]byte(nil), raw...), 0xde, 0xad)

	_, n, err := ParseChunk(input)
	require.NoError(t, err)
	assert.Equal(t, len(raw), n)
}

func TestParseChunk_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	raw := testutil.ValidChunk("ruSt", []byte("payload"))
	chunk, _, err := ParseChunk(raw)
	require.NoError(t, err)

	for i := range raw {
		raw[i] = 0
	}
	assert.Equal(t, []byte("payload"), chunk.Data())
}

func TestParseChunk_MaxLength(t *testing.T) {
	t.Parallel()

	raw := testutil.ValidChunk("ruSt", []byte("0123456789"))

	_, _, err := parseChunk(raw, 9)
	require.ErrorIs(t, err, ErrChunkTooLarge)

	_, _, err = parseChunk(raw, 10)
	require.NoError(t, err)
}

func TestChunk_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  string
		data []byte
	}{
		{name: "empty payload", typ: "IEND", data: nil},
		{name: "text", typ: "RuSt", data: []byte(testMessage)},
		{name: "binary", typ: "ruSt", data: testutil.RandomPayload(1, 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			orig := NewChunk(MustParseTypeCode(tt.typ), tt.data)
			encoded := orig.Bytes()
			assert.Len(t, encoded, orig.Size())
			assert.Equal(t, testutil.ValidChunk(tt.typ, tt.data), encoded)

			got, n, err := ParseChunk(encoded)
			require.NoError(t, err)
			assert.Equal(t, len(encoded), n)
			assert.Equal(t, orig.Type(), got.Type())
			assert.Equal(t, orig.CRC(), got.CRC())
			assert.True(t, bytes.Equal(orig.Data(), got.Data()))
			assert.Equal(t, encoded, got.Bytes())
		})
	}
}

func TestChunk_ChecksumSensitivity(t *testing.T) {
	t.Parallel()

	raw := testutil.ValidChunk("RuSt", []byte("flip me"))
	// Type and data occupy bytes 4 through len-4.
	for bit := 4 * 8; bit < (len(raw)-4)*8; bit++ {
		_, _, err := ParseChunk(testutil.FlipBit(raw, bit))
		require.ErrorIs(t, err, ErrChecksumMismatch, "bit %d", bit)
	}
}

func TestChunk_TextNotUTF8(t *testing.T) {
	t.Parallel()

	chunk := NewChunk(MustParseTypeCode("RuSt"), []byte{0xff, 0xfe, 0x00})
	_, err := chunk.Text()
	require.ErrorIs(t, err, ErrNotUTF8)
}

func TestChunk_WriteTo(t *testing.T) {
	t.Parallel()

	chunk := NewChunk(MustParseTypeCode("RuSt"), []byte(testMessage))
	var buf bytes.Buffer
	n, err := chunk.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(chunk.Size()), n)
	assert.Equal(t, chunk.Bytes(), buf.Bytes())
}

func TestChunk_String(t *testing.T) {
	t.Parallel()

	chunk := NewChunk(MustParseTypeCode("RuSt"), []byte(testMessage))
	s := chunk.String()
	assert.Contains(t, s, "Length: 42")
	assert.Contains(t, s, "Type: RuSt")
	assert.Contains(t, s, "Data: 42 bytes")
	assert.Contains(t, s, "Crc: 2882656334")
}
