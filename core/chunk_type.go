package pngchunk

// TypeCodeSize is the length of a chunk type code in bytes.
const TypeCodeSize = 4

// TypeCode is the 4-byte tag identifying a chunk's purpose.
//
// The case of each byte carries a property bit: byte 0 critical, byte 1
// public, byte 2 reserved, byte 3 safe-to-copy. Equality is byte-for-byte,
// so TypeCode values can be compared with ==.
type TypeCode [TypeCodeSize]byte

// TypeCodeFromBytes returns the type code for b without validation.
//
// Foreign or unknown codes are accepted so that a container can round-trip
// chunks it does not understand.
func TypeCodeFromBytes(b [TypeCodeSize]byte) TypeCode {
	return TypeCode(b)
}

// ParseTypeCode parses a 4-character type code.
//
// It returns ErrInvalidLength unless s is exactly 4 bytes and
// ErrInvalidCharacters unless every byte is an ASCII letter. Case is preserved.
func ParseTypeCode(s string) (TypeCode, error) {
	if len(s) != TypeCodeSize {
		return TypeCode{}, ErrInvalidLength
	}
	var t TypeCode
	for i := range TypeCodeSize {
		if !isASCIIAlpha(s[i]) {
			return TypeCode{}, ErrInvalidCharacters
		}
		t[i] = s[i]
	}
	return t, nil
}

// MustParseTypeCode is like ParseTypeCode but panics on error.
// It is intended for package-level variables with literal codes.
func MustParseTypeCode(s string) TypeCode {
	t, err := ParseTypeCode(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Bytes returns a copy of the raw type code bytes.
func (t TypeCode) Bytes() [TypeCodeSize]byte {
	return t
}

// String returns the type code as text. Each byte that is not part of a
// valid UTF-8 sequence becomes its own U+FFFD.
func (t TypeCode) String() string {
	return string([]rune(string(t[:])))
}

// IsCritical reports whether the chunk is critical (byte 0 uppercase).
func (t TypeCode) IsCritical() bool {
	return isASCIIUpper(t[0])
}

// IsPublic reports whether the chunk type is public (byte 1 uppercase).
func (t TypeCode) IsPublic() bool {
	return isASCIIUpper(t[1])
}

// IsReservedBitValid reports whether the reserved bit is clear (byte 2 uppercase).
func (t TypeCode) IsReservedBitValid() bool {
	return isASCIIUpper(t[2])
}

// IsSafeToCopy reports whether the chunk may be copied by editors that do
// not recognise it (byte 3 lowercase).
func (t TypeCode) IsSafeToCopy() bool {
	return isASCIILower(t[3])
}

// IsValid reports whether every byte is an ASCII letter and the reserved bit is valid.
func (t TypeCode) IsValid() bool {
	for _, b := range t {
		if !isASCIIAlpha(b) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

func isASCIIUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isASCIILower(b byte) bool { return b >= 'a' && b <= 'z' }
func isASCIIAlpha(b byte) bool { return isASCIIUpper(b) || isASCIILower(b) }
