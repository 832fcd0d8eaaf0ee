// Package wire serializes wide code-unit sequences to and from their
// byte-stream forms: UTF-16LE, UTF-16BE, UTF-32LE, UTF-32BE, with
// optional byte-order marks.
//
// wire handles only the byte layout of wide units. Transcoding between
// wide units and UTF-8 is package widecode's job; a typical pipeline is
//
//	Unmarshal -> widecode.EncodeWithOptions   (wide bytes to UTF-8)
//	widecode.DecodeWithOptions -> Marshal     (UTF-8 to wide bytes)
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/Neumenon/widecode/widecode"
)

// ByteOrder selects the unit byte layout.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = 0
	BigEndian    ByteOrder = 1
)

// String returns the order name.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "le"
	case BigEndian:
		return "be"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(o))
	}
}

// byteOrder joins the read and append halves of encoding/binary's order
// interfaces; binary.LittleEndian and binary.BigEndian satisfy both.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (o ByteOrder) binary() byteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// BOM is the byte-order mark code point U+FEFF.
const BOM uint32 = 0xFEFF

// SizeError is returned when the input length is not a multiple of the
// unit size.
type SizeError struct {
	Len   int
	Width widecode.Width
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("wire: %d bytes is not a multiple of the %s unit size (%d)",
		e.Len, e.Width, e.Width.Bytes())
}

// RangeError is returned when a unit does not fit the selected width.
type RangeError struct {
	Index int
	Value uint32
	Width widecode.Width
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("wire: unit 0x%X at index %d does not fit %s", e.Value, e.Index, e.Width)
}

// Marshal packs wide code units into bytes at the given width and order.
func Marshal(units []uint32, w widecode.Width, order ByteOrder) ([]byte, error) {
	bo := order.binary()
	out := make([]byte, 0, len(units)*w.Bytes())

	for i, u := range units {
		if w == widecode.Width16 {
			if u > 0xFFFF {
				return nil, &RangeError{Index: i, Value: u, Width: w}
			}
			out = bo.AppendUint16(out, uint16(u))
		} else {
			out = bo.AppendUint32(out, u)
		}
	}
	return out, nil
}

// MarshalBOM is Marshal with a leading byte-order mark.
func MarshalBOM(units []uint32, w widecode.Width, order ByteOrder) ([]byte, error) {
	body, err := Marshal(units, w, order)
	if err != nil {
		return nil, err
	}
	head, _ := Marshal([]uint32{BOM}, w, order)
	return append(head, body...), nil
}

// Unmarshal unpacks bytes into wide code units at the given width and
// order. A leading BOM is returned as a unit, not stripped; use
// DetectOrder first when the order is unknown.
func Unmarshal(b []byte, w widecode.Width, order ByteOrder) ([]uint32, error) {
	size := w.Bytes()
	if len(b)%size != 0 {
		return nil, &SizeError{Len: len(b), Width: w}
	}
	bo := order.binary()

	out := make([]uint32, 0, len(b)/size)
	for i := 0; i < len(b); i += size {
		if w == widecode.Width16 {
			out = append(out, uint32(bo.Uint16(b[i:])))
		} else {
			out = append(out, bo.Uint32(b[i:]))
		}
	}
	return out, nil
}

// DetectOrder sniffs a byte-order mark at the start of b. It returns the
// detected order, the number of BOM bytes to skip, and whether a BOM was
// found. Without a BOM it reports (LittleEndian, 0, false).
func DetectOrder(b []byte, w widecode.Width) (ByteOrder, int, bool) {
	if w == widecode.Width16 {
		if len(b) >= 2 {
			if b[0] == 0xFE && b[1] == 0xFF {
				return BigEndian, 2, true
			}
			if b[0] == 0xFF && b[1] == 0xFE {
				return LittleEndian, 2, true
			}
		}
		return LittleEndian, 0, false
	}
	if len(b) >= 4 {
		if b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF {
			return BigEndian, 4, true
		}
		if b[0] == 0xFF && b[1] == 0xFE && b[2] == 0x00 && b[3] == 0x00 {
			return LittleEndian, 4, true
		}
	}
	return LittleEndian, 0, false
}
