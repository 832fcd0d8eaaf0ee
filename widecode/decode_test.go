package widecode

import (
	"errors"
	"reflect"
	"testing"
)

// ============================================================
// Decoder Tests
// ============================================================

func TestDecode_ASCII(t *testing.T) {
	for _, w := range []Width{Width16, Width32} {
		t.Run(w.String(), func(t *testing.T) {
			got, err := DecodeWithOptions([]byte("hello"), Options{Width: w})
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			want := []uint32{'h', 'e', 'l', 'l', 'o'}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestDecode_MultiByte(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []uint32
	}{
		{"two_byte", []byte{0xCE, 0xA6}, []uint32{0x3A6}}, // Φ
		{"two_byte_max", []byte{0xDF, 0xBF}, []uint32{0x7FF}},
		{"three_byte_min", []byte{0xE0, 0xA0, 0x80}, []uint32{0x800}},
		{"three_byte", []byte{0xE4, 0xBD, 0xA0}, []uint32{0x4F60}}, // 你
		{"three_byte_max", []byte{0xEF, 0xBF, 0xBF}, []uint32{0xFFFF}},
		{"mixed", []byte{'a', 0xCE, 0xA6, 'b'}, []uint32{'a', 0x3A6, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range []Width{Width16, Width32} {
				got, err := DecodeWithOptions(tt.in, Options{Width: w})
				if err != nil {
					t.Fatalf("%s: Decode failed: %v", w, err)
				}
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("%s: expected %v, got %v", w, tt.want, got)
				}
			}
		})
	}
}

func TestDecode_FourByte(t *testing.T) {
	in := []byte{0xF0, 0x90, 0x90, 0xB7} // U+10437

	t.Run("utf16_pair", func(t *testing.T) {
		got, err := DecodeWithOptions(in, Options{Width: Width16})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		want := []uint32{0xD801, 0xDC37}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %04X, got %04X", want, got)
		}
	})

	t.Run("utf32_direct", func(t *testing.T) {
		got, err := DecodeWithOptions(in, Options{Width: Width32})
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		want := []uint32{0x10437}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %04X, got %04X", want, got)
		}
	})
}

func TestDecode_Empty(t *testing.T) {
	for _, w := range []Width{Width16, Width32} {
		got, err := DecodeWithOptions(nil, Options{Width: w})
		if err != nil {
			t.Fatalf("%s: Decode failed: %v", w, err)
		}
		if len(got) != 0 {
			t.Errorf("%s: expected empty output, got %v", w, got)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		kind   ErrorKind
		offset int
	}{
		{"lead_0xFF", []byte{0xFF}, InvalidLeadByte, 0},
		{"lead_0xF8", []byte{0xF8, 0x80, 0x80, 0x80, 0x80}, InvalidLeadByte, 0},
		{"continuation_as_lead", []byte{0x80}, InvalidLeadByte, 0},
		{"bad_lead_mid_input", []byte{'a', 'b', 0xBF}, InvalidLeadByte, 2},
		{"truncated_two_byte", []byte{0xCE}, TruncatedSequence, 0},
		{"truncated_three_byte", []byte{0xE0, 0xA0}, TruncatedSequence, 0},
		{"truncated_four_byte", []byte{0xF0, 0x90, 0x90}, TruncatedSequence, 0},
		{"truncated_after_ascii", []byte{'a', 0xF0, 0x90}, TruncatedSequence, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range []Width{Width16, Width32} {
				out, err := DecodeWithOptions(tt.in, Options{Width: w})
				if err == nil {
					t.Fatalf("%s: expected error, got %v", w, out)
				}
				var ce *ConvError
				if !errors.As(err, &ce) {
					t.Fatalf("%s: expected *ConvError, got %T", w, err)
				}
				if ce.Kind != tt.kind {
					t.Errorf("%s: expected kind %s, got %s", w, tt.kind, ce.Kind)
				}
				if ce.Offset != tt.offset {
					t.Errorf("%s: expected offset %d, got %d", w, tt.offset, ce.Offset)
				}
			}
		})
	}
}

func TestDecodeUTF16(t *testing.T) {
	got, err := DecodeUTF16([]byte{'h', 'i', 0xF0, 0x90, 0x90, 0xB7})
	if err != nil {
		t.Fatalf("DecodeUTF16 failed: %v", err)
	}
	want := []uint16{'h', 'i', 0xD801, 0xDC37}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %04X, got %04X", want, got)
	}
}

func TestDecode_DeterministicFailure(t *testing.T) {
	// The same malformed input always fails identically.
	in := []byte{'a', 0xFF}
	_, err1 := DecodeWithOptions(in, Options{Width: Width16})
	_, err2 := DecodeWithOptions(in, Options{Width: Width16})
	if err1 == nil || err2 == nil {
		t.Fatal("Expected errors")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("Errors differ: %v vs %v", err1, err2)
	}
}
