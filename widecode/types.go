package widecode

import (
	"fmt"
	"runtime"
)

// Width selects the wide code-unit size.
type Width uint8

const (
	Width16 Width = 16 // 16-bit units, supplementary planes via surrogate pairs
	Width32 Width = 32 // 32-bit units, one code point per unit
)

// String returns the width name.
func (w Width) String() string {
	switch w {
	case Width16:
		return "utf16"
	case Width32:
		return "utf32"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(w))
	}
}

// Bytes returns the size of one code unit in bytes.
func (w Width) Bytes() int {
	if w == Width16 {
		return 2
	}
	return 4
}

// Valid reports whether w is a recognized width.
func (w Width) Valid() bool {
	return w == Width16 || w == Width32
}

// NativeWidth returns the wide-character width matching the platform's
// wchar_t convention: Width16 on Windows, Width32 elsewhere.
func NativeWidth() Width {
	if runtime.GOOS == "windows" {
		return Width16
	}
	return Width32
}

// Unicode range constants.
const (
	// Surrogate block. High surrogates carry the upper 10 bits of a
	// supplementary code point, low surrogates the lower 10.
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrEnd  = 0xE000

	// surrSelf is the first code point that requires a surrogate pair.
	surrSelf = 0x10000

	// MaxCodePoint is the largest valid Unicode code point.
	MaxCodePoint = 0x10FFFF

	// max1Byte, max2Byte, max3Byte are the last code points of each
	// UTF-8 length class.
	max1Byte = 0x7F
	max2Byte = 0x7FF
	max3Byte = 0xFFFF
)

// UTF-8 bit patterns: lead-byte tags and the continuation tag/payload mask.
const (
	tag2Byte = 0xC0 // 110xxxxx
	tag3Byte = 0xE0 // 1110xxxx
	tag4Byte = 0xF0 // 11110xxx
	tagCont  = 0x80 // 10xxxxxx

	mask2Byte = 0x1F
	mask3Byte = 0x0F
	mask4Byte = 0x07
	maskCont  = 0x3F
)

// IsSurrogate reports whether u lies in the surrogate block.
func IsSurrogate(u uint32) bool {
	return surrHigh <= u && u < surrEnd
}

// IsHighSurrogate reports whether u is a high (leading) surrogate.
func IsHighSurrogate(u uint32) bool {
	return surrHigh <= u && u < surrLow
}

// IsLowSurrogate reports whether u is a low (trailing) surrogate.
func IsLowSurrogate(u uint32) bool {
	return surrLow <= u && u < surrEnd
}

// EncodedLen returns the number of UTF-8 bytes needed for the code point
// cp, or 0 if cp is not a valid code point.
func EncodedLen(cp uint32) int {
	switch {
	case cp <= max1Byte:
		return 1
	case cp <= max2Byte:
		return 2
	case cp <= max3Byte:
		return 3
	case cp <= MaxCodePoint:
		return 4
	default:
		return 0
	}
}
