// Package widecode converts text between a fixed-unit "wide" encoding
// (UTF-16 with surrogate pairs, or UTF-32 with one code point per unit)
// and UTF-8.
//
// widecode is a pure in-memory transcoder:
//   - No I/O, no global state, no allocation beyond the output buffer
//   - Fail-fast on malformed input (no replacement characters)
//   - Both widths available in one build, selectable per call
//   - Encode and Decode are mutual inverses over valid input
//
// # Width Selection
//
// The wide-unit width mirrors the platform's wchar_t convention: 16-bit
// on Windows, 32-bit elsewhere. NativeWidth reports the platform default,
// which the package-level Encode and Decode use. EncodeWithOptions and
// DecodeWithOptions accept an explicit Width when the caller is handling
// foreign data rather than native wide strings.
//
// # Data Model
//
// Wide code units travel as []uint32 regardless of width; in Width16 mode
// every unit must fit in 16 bits. EncodeUTF16 and DecodeUTF16 wrap the
// Width16 paths for callers holding []uint16, the representation used by
// syscall and unicode/utf16.
//
// # Error Policy
//
// Malformed input aborts the whole conversion with a *ConvError carrying
// a machine-readable Kind and the offset of the offending unit or byte.
// Partial output is never returned. The same input always fails
// identically; both functions are safe for concurrent use.
package widecode
