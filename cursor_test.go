package mbus

import (
	"errors"
	"testing"
)

func TestCursor_TakeOne(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	b, err := c.TakeOne()
	if err != nil || b != 0x01 {
		t.Fatalf("TakeOne() = %#02x, %v, want 0x01, nil", b, err)
	}
	b, err = c.TakeOne()
	if err != nil || b != 0x02 {
		t.Fatalf("TakeOne() = %#02x, %v, want 0x02, nil", b, err)
	}
	if _, err := c.TakeOne(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("TakeOne() on exhausted cursor = %v, want ErrUnexpectedEnd", err)
	}
}

func TestCursor_Take(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})

	got, err := c.Take(2)
	if err != nil {
		t.Fatalf("Take(2) error: %v", err)
	}
	if string(got) != string([]byte{0x01, 0x02}) {
		t.Errorf("Take(2) = % X, want 01 02", got)
	}
	if c.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", c.Remaining())
	}

	if _, err := c.Take(2); !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("Take(2) past end = %v, want ErrUnexpectedEnd", err)
	}
}

func TestCursor_EmptyInput(t *testing.T) {
	c := NewCursor(nil)
	if _, ok := c.Peek(); ok {
		t.Error("Peek() on empty cursor returned ok=true")
	}
	if _, err := c.TakeOne(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("TakeOne() on empty cursor = %v, want ErrUnexpectedEnd", err)
	}
}

func TestCursor_Offset(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	if c.Offset() != 0 {
		t.Fatalf("Offset() = %d, want 0", c.Offset())
	}
	c.Advance()
	if c.Offset() != 1 {
		t.Fatalf("Offset() after Advance = %d, want 1", c.Offset())
	}
	if _, err := c.Take(2); err != nil {
		t.Fatalf("Take(2) error: %v", err)
	}
	if c.Offset() != 3 {
		t.Fatalf("Offset() after Take = %d, want 3", c.Offset())
	}
}
