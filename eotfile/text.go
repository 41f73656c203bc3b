package eotfile

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Names and root strings are UTF-16 little-endian without byte order mark.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

var errOddLength = errors.New("odd number of bytes")

// decodeUTF16 decodes strictly: an odd byte count or an unpaired surrogate
// is an error rather than a replacement character.
func decodeUTF16(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errOddLength
	}
	if at := unpairedSurrogate(b); at >= 0 {
		return "", fmt.Errorf("unpaired surrogate at byte %d", at)
	}
	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

func encodeUTF16(s string) ([]byte, error) {
	return utf16le.NewEncoder().Bytes([]byte(s))
}

// unpairedSurrogate returns the byte index of the first code unit which is
// not part of a valid surrogate pair, or -1.
func unpairedSurrogate(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		u := uint16(b[i]) | uint16(b[i+1])<<8
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+3 >= len(b) {
				return i
			}
			next := uint16(b[i+2]) | uint16(b[i+3])<<8
			if next < 0xDC00 || next >= 0xE000 {
				return i
			}
			i += 2
		case u >= 0xDC00 && u < 0xE000:
			return i
		}
	}
	return -1
}
