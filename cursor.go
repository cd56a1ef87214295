package mbus

/*
Cursor is a forward-only view over a finite byte sequence. Every parser
in this package receives a *Cursor and advances it in place, so sibling
parsers (DIF then its DIFE chain, DIB then VIB, record header then
payload) chain without re-slicing or copying the input.

A Cursor never retains a reference past the call that produced its
return value: Take returns a sub-slice of the original input, which the
caller (e.g. a Record's payload bytes) is free to keep, but the Cursor
itself holds nothing beyond its offset into that same backing array.
*/
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data in a Cursor positioned at its start.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current position within the original input.
func (c *Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Peek returns the next byte without consuming it. ok is false at
// end-of-input.
func (c *Cursor) Peek() (b byte, ok bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

// Advance moves the cursor forward by one byte, if any remain.
func (c *Cursor) Advance() {
	if c.pos < len(c.data) {
		c.pos++
	}
}

// TakeOne consumes and returns the next byte, or ErrUnexpectedEnd if the
// cursor is exhausted.
func (c *Cursor) TakeOne() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, newUnexpectedEndError("cursor.take_one", c.pos)
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Take consumes and returns the next n bytes, or ErrUnexpectedEnd if
// fewer than n bytes remain. The returned slice aliases the Cursor's
// backing array; callers that need to retain it beyond the Cursor's
// lifetime should treat it as a borrowed view just like the Cursor does.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, newUnexpectedEndError("cursor.take", c.pos)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
