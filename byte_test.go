package mbus

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestNewByte(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		wantErr bool
	}{
		{"zero", 0, false},
		{"max", 255, false},
		{"negative", -1, true},
		{"too large", 256, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewByte(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewByte(%d) = %v, want error", tt.in, got)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("NewByte(%d) error = %v, want ErrValidation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewByte(%d) unexpected error: %v", tt.in, err)
			}
			if int(got) != tt.in {
				t.Errorf("NewByte(%d) = %d, want %d", tt.in, got, tt.in)
			}
		})
	}
}

func TestNewByte_EveryByteInRangeSucceeds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 255).Draw(rt, "n")
		got, err := NewByte(n)
		if err != nil {
			rt.Fatalf("NewByte(%d) unexpected error: %v", n, err)
		}
		if int(got) != n {
			rt.Fatalf("NewByte(%d) = %d", n, got)
		}
	})
}
