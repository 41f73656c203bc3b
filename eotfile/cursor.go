package eotfile

import "encoding/binary"

// Reading fixed-width fields from a container's binary representation

// Cursor is a forward-only reader over an in-memory byte buffer.
// It never returns short reads: a read which would run past the end of the
// buffer fails with ErrTruncatedInput and leaves the cursor unchanged.
//
// A Cursor is not safe for concurrent use. The decoder creates one per call.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor positioned at the start of b.
// The cursor does not modify b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// view returns the next n bytes as a sub-slice of the buffer and advances.
func (c *Cursor) view(n int, field string) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, &DecodeError{
			Kind:   KindTruncatedInput,
			Field:  field,
			Offset: uint32(c.pos),
			Value:  uint32(n),
			Issue:  "need more bytes than remain in buffer",
		}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU16LE reads an unsigned 16-bit little-endian integer.
func (c *Cursor) ReadU16LE(field string) (uint16, error) {
	b, err := c.view(2, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads an unsigned 32-bit little-endian integer.
func (c *Cursor) ReadU32LE(field string) (uint32, error) {
	b, err := c.view(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8(field string) (byte, error) {
	b, err := c.view(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBytes reads exactly n bytes. The result is a copy and does not alias
// the cursor's buffer.
//
// n is checked against the remaining length before anything is allocated,
// so a corrupt size prefix cannot trigger a huge allocation.
func (c *Cursor) ReadBytes(n int, field string) ([]byte, error) {
	b, err := c.view(n, field)
	if err != nil {
		return nil, err
	}
	r := make([]byte, n)
	copy(r, b)
	return r, nil
}
