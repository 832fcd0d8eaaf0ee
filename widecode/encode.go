package widecode

// Options configures a conversion.
type Options struct {
	// Width is the wide code-unit width. Zero means NativeWidth().
	Width Width
}

// DefaultOptions returns options for the platform-native width.
func DefaultOptions() Options {
	return Options{Width: NativeWidth()}
}

func (o Options) width() Width {
	if o.Width == 0 {
		return NativeWidth()
	}
	return o.Width
}

// Encode converts a wide code-unit sequence to UTF-8 using the
// platform-native width.
func Encode(units []uint32) ([]byte, error) {
	return EncodeWithOptions(units, DefaultOptions())
}

// EncodeWithOptions converts a wide code-unit sequence to UTF-8.
//
// The output is freshly allocated and never partially valid: the first
// malformed unit aborts the conversion with a *ConvError.
func EncodeWithOptions(units []uint32, opts Options) ([]byte, error) {
	if opts.width() == Width16 {
		return encode16(units)
	}
	return encode32(units)
}

// EncodeUTF16 converts a UTF-16 code-unit sequence to UTF-8. It is the
// Width16 encode path for callers holding []uint16.
func EncodeUTF16(units []uint16) ([]byte, error) {
	wide := make([]uint32, len(units))
	for i, u := range units {
		wide[i] = uint32(u)
	}
	return encode16(wide)
}

// encode16 encodes 16-bit wide units, assembling surrogate pairs.
//
// The pending accumulator is the only cross-unit state: a high surrogate
// stores its contribution and the following unit must complete the pair.
func encode16(units []uint32) ([]byte, error) {
	// Worst case is 4 output bytes per input unit.
	out := make([]byte, 0, len(units)*4)

	var pending uint32
	havePending := false
	pendingAt := 0

	for i, u := range units {
		if havePending {
			if !IsLowSurrogate(u) {
				return nil, convErr(DanglingHighSurrogate, pendingAt, units[pendingAt])
			}
			cp := pending + (u - surrLow) + surrSelf
			if cp > MaxCodePoint {
				return nil, convErr(SurrogateOutOfRange, i, cp)
			}
			out = append(out,
				tag4Byte|byte(cp>>18),
				tagCont|byte((cp>>12)&maskCont),
				tagCont|byte((cp>>6)&maskCont),
				tagCont|byte(cp&maskCont))
			havePending = false
			continue
		}

		switch {
		case u <= max1Byte:
			out = append(out, byte(u))
		case u <= max2Byte:
			out = append(out, tag2Byte|byte(u>>6), tagCont|byte(u&maskCont))
		case IsHighSurrogate(u):
			pending = (u - surrHigh) * 0x400
			havePending = true
			pendingAt = i
		case IsLowSurrogate(u):
			return nil, convErr(LoneLowSurrogate, i, u)
		case u <= max3Byte:
			out = append(out,
				tag3Byte|byte(u>>12),
				tagCont|byte((u>>6)&maskCont),
				tagCont|byte(u&maskCont))
		default:
			return nil, convErr(UnitOutOfRange, i, u)
		}
	}

	if havePending {
		return nil, convErr(DanglingHighSurrogate, pendingAt, units[pendingAt])
	}
	return out, nil
}

// encode32 encodes 32-bit wide units, one code point per unit. Units in
// the surrogate block take the three-byte form unchecked, matching the
// 32-bit wchar_t convention this path mirrors.
func encode32(units []uint32) ([]byte, error) {
	out := make([]byte, 0, len(units)*4)

	for i, u := range units {
		switch {
		case u <= max1Byte:
			out = append(out, byte(u))
		case u <= max2Byte:
			out = append(out, tag2Byte|byte(u>>6), tagCont|byte(u&maskCont))
		case u <= max3Byte:
			out = append(out,
				tag3Byte|byte(u>>12),
				tagCont|byte((u>>6)&maskCont),
				tagCont|byte(u&maskCont))
		case u <= MaxCodePoint:
			out = append(out,
				tag4Byte|byte(u>>18),
				tagCont|byte((u>>12)&maskCont),
				tagCont|byte((u>>6)&maskCont),
				tagCont|byte(u&maskCont))
		default:
			return nil, convErr(UnitOutOfRange, i, u)
		}
	}
	return out, nil
}
