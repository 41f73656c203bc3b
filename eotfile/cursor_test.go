package eotfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReadsLittleEndian(t *testing.T) {
	c := NewCursor([]byte{0x4C, 0x50, 0x01, 0x00, 0x02, 0x00, 0xAB, 0x01, 0x02})
	u16, err := c.ReadU16LE("a")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x504C), u16)
	u32, err := c.ReadU32LE("b")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00020001), u32)
	u8, err := c.ReadU8("c")
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), u8)
	assert.Equal(t, 7, c.Offset())
	assert.Equal(t, 2, c.Remaining())
	b, err := c.ReadBytes(2, "d")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)
	assert.Equal(t, 0, c.Remaining())
}

func TestCursorNeverReadsShort(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	_, err := c.ReadU32LE("Weight")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncatedInput))
	assert.Equal(t, 0, c.Offset(), "failed read must not advance the cursor")

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "Weight", de.Field)
	assert.Equal(t, uint32(4), de.Value)

	_, err = c.ReadBytes(4, "FontData")
	assert.ErrorIs(t, err, ErrTruncatedInput)
	_, err = c.ReadBytes(-1, "FontData")
	assert.ErrorIs(t, err, ErrTruncatedInput)

	_, err = c.ReadU16LE("x")
	require.NoError(t, err)
	_, err = c.ReadU16LE("y")
	assert.ErrorIs(t, err, ErrTruncatedInput)
	assert.Equal(t, 2, c.Offset())
}

func TestCursorReadBytesCopies(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	c := NewCursor(buf)
	b, err := c.ReadBytes(4, "blob")
	require.NoError(t, err)
	buf[0] = 99
	assert.Equal(t, byte(1), b[0], "ReadBytes must not alias the source buffer")
}

func TestCursorEmptyRead(t *testing.T) {
	c := NewCursor(nil)
	b, err := c.ReadBytes(0, "Signature")
	require.NoError(t, err)
	assert.Empty(t, b)
}
