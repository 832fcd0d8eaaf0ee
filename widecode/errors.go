package widecode

import "fmt"

// ErrorKind classifies conversion failures.
type ErrorKind uint8

const (
	// LoneLowSurrogate: a low surrogate with no immediately preceding
	// high surrogate (encode, Width16).
	LoneLowSurrogate ErrorKind = iota

	// DanglingHighSurrogate: a high surrogate not followed by a low
	// surrogate, including at end of input (encode, Width16).
	DanglingHighSurrogate

	// SurrogateOutOfRange: a surrogate pair assembled to a code point
	// above 0x10FFFF (encode, Width16).
	SurrogateOutOfRange

	// UnitOutOfRange: a wide unit not representable in the selected
	// width (above 0xFFFF in Width16, above 0x10FFFF in Width32).
	UnitOutOfRange

	// InvalidLeadByte: a UTF-8 lead byte matching none of the four
	// recognized patterns (decode).
	InvalidLeadByte

	// TruncatedSequence: a multi-byte UTF-8 sequence running past the
	// end of the input (decode).
	TruncatedSequence
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case LoneLowSurrogate:
		return "lone low surrogate"
	case DanglingHighSurrogate:
		return "dangling high surrogate"
	case SurrogateOutOfRange:
		return "surrogate pair out of range"
	case UnitOutOfRange:
		return "unit out of range"
	case InvalidLeadByte:
		return "invalid lead byte"
	case TruncatedSequence:
		return "truncated sequence"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ConvError describes a conversion failure. Offset is a unit index on the
// encode path and a byte offset on the decode path; Value is the
// offending unit or lead byte.
type ConvError struct {
	Kind   ErrorKind
	Offset int
	Value  uint32
}

func (e *ConvError) Error() string {
	return fmt.Sprintf("widecode: %s at offset %d (0x%X)", e.Kind, e.Offset, e.Value)
}

// Is reports whether target is a *ConvError of the same kind, letting
// callers match with errors.Is against a kind-only sentinel.
func (e *ConvError) Is(target error) bool {
	t, ok := target.(*ConvError)
	return ok && t.Kind == e.Kind
}

func convErr(kind ErrorKind, offset int, value uint32) error {
	return &ConvError{Kind: kind, Offset: offset, Value: value}
}
