package widecode

// Decode converts a UTF-8 byte sequence to wide code units using the
// platform-native width.
func Decode(b []byte) ([]uint32, error) {
	return DecodeWithOptions(b, DefaultOptions())
}

// DecodeWithOptions converts a UTF-8 byte sequence to wide code units.
//
// Validation is structural: the lead byte's high bits select the sequence
// length, and the sequence must fit inside the input. Continuation bytes
// contribute their low six bits without further checks. The first invalid
// lead byte or truncated sequence aborts the conversion with a *ConvError.
func DecodeWithOptions(b []byte, opts Options) ([]uint32, error) {
	w := opts.width()

	// Most inputs average two bytes per unit; exact size is data-dependent.
	capHint := len(b) / 2
	if capHint < 1 {
		capHint = 1
	}
	out := make([]uint32, 0, capHint)

	for i := 0; i < len(b); {
		b0 := b[i]
		switch {
		case b0&0x80 == 0:
			out = append(out, uint32(b0))
			i++

		case b0&0xE0 == tag2Byte:
			if i+2 > len(b) {
				return nil, convErr(TruncatedSequence, i, uint32(b0))
			}
			cp := uint32(b0&mask2Byte)<<6 | uint32(b[i+1]&maskCont)
			out = append(out, cp)
			i += 2

		case b0&0xF0 == tag3Byte:
			if i+3 > len(b) {
				return nil, convErr(TruncatedSequence, i, uint32(b0))
			}
			cp := uint32(b0&mask3Byte)<<12 |
				uint32(b[i+1]&maskCont)<<6 |
				uint32(b[i+2]&maskCont)
			out = append(out, cp)
			i += 3

		case b0&0xF8 == tag4Byte:
			if i+4 > len(b) {
				return nil, convErr(TruncatedSequence, i, uint32(b0))
			}
			cp := uint32(b0&mask4Byte)<<18 |
				uint32(b[i+1]&maskCont)<<12 |
				uint32(b[i+2]&maskCont)<<6 |
				uint32(b[i+3]&maskCont)
			if w == Width16 {
				out = append(out,
					(cp-surrSelf)>>10+surrHigh,
					cp%0x400+surrLow)
			} else {
				out = append(out, cp)
			}
			i += 4

		default:
			// Continuation byte in lead position, or a 0xF8+ pattern.
			return nil, convErr(InvalidLeadByte, i, uint32(b0))
		}
	}
	return out, nil
}

// DecodeUTF16 converts a UTF-8 byte sequence to UTF-16 code units. It is
// the Width16 decode path for callers wanting []uint16.
func DecodeUTF16(b []byte) ([]uint16, error) {
	wide, err := DecodeWithOptions(b, Options{Width: Width16})
	if err != nil {
		return nil, err
	}
	out := make([]uint16, len(wide))
	for i, u := range wide {
		out[i] = uint16(u)
	}
	return out, nil
}
