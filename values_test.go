package mbus

import (
	"errors"
	"testing"
)

func TestDecodeSignedInt(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int64
	}{
		{"single byte -1", []byte{0xFF}, -1},
		{"two bytes 511", []byte{0xFF, 0x01}, 511},
		{"two bytes negative", []byte{0xFF, 0x81}, -32257},
		{"single byte min", []byte{0x80}, -128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSignedInt(tt.in)
			if err != nil {
				t.Fatalf("DecodeSignedInt(% X) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DecodeSignedInt(% X) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeSignedInt_EmptyRejected(t *testing.T) {
	if _, err := DecodeSignedInt(nil); err == nil {
		t.Error("DecodeSignedInt(nil) = nil error, want error")
	}
}

func TestDecodeUnsignedInt(t *testing.T) {
	got, err := DecodeUnsignedInt([]byte{0x01, 0xFF})
	if err != nil {
		t.Fatalf("DecodeUnsignedInt() error: %v", err)
	}
	if got != 0xFF01 {
		t.Errorf("DecodeUnsignedInt() = %#x, want 0xFF01", got)
	}
}

func TestDecodeBoolean(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"zero", []byte{0x00}, false},
		{"nonzero with LSB clear", []byte{0x80}, true},
		{"two bytes nonzero", []byte{0x01, 0xFF}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBoolean(tt.in)
			if err != nil {
				t.Fatalf("DecodeBoolean(% X) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("DecodeBoolean(% X) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeBCD(t *testing.T) {
	got, err := DecodeBCD([]byte{0x42, 0x13})
	if err != nil {
		t.Fatalf("DecodeBCD() error: %v", err)
	}
	if got != 1342 {
		t.Errorf("DecodeBCD([0x42 0x13]) = %d, want 1342", got)
	}
}

func TestDecodeBCD_BadNibbleRejected(t *testing.T) {
	_, err := DecodeBCD([]byte{0xFA})
	if err == nil {
		t.Fatal("DecodeBCD(0xFA) = nil error, want error")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("DecodeBCD(0xFA) error = %v, want ErrDecode", err)
	}
}

func TestDecodeReal32(t *testing.T) {
	// 1.0f = 0x3F800000, little-endian bytes 00 00 80 3F
	got, err := decodeReal32([]byte{0x00, 0x00, 0x80, 0x3F})
	if err != nil {
		t.Fatalf("decodeReal32() error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("decodeReal32() = %v, want 1.0", got)
	}
}

func TestDecodeReal32_WrongLength(t *testing.T) {
	if _, err := decodeReal32([]byte{0x00, 0x00}); err == nil {
		t.Error("decodeReal32(2 bytes) = nil error, want error")
	}
}
