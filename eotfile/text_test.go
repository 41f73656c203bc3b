package eotfile

import "testing"

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
		ok   bool
	}{
		{[]byte{}, "", true},
		{[]byte{'a', 0, 0, 0, 'b', 0}, "a\x00b", true},
		{[]byte{0xFF, 0xFE, 'a', 0}, "\uFEFFa", true}, // BOM is kept as text
		{[]byte{0x34, 0xD8, 0x1E, 0xDD}, "𝄞", true},
		{[]byte{'a'}, "", false},
		{[]byte{0x34, 0xD8}, "", false},
		{[]byte{0x1E, 0xDD, 0x34, 0xD8}, "", false},
	}
	for i, tt := range tests {
		s, err := decodeUTF16(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("%d: decodeUTF16(% x) error = %v; want ok = %v", i, tt.in, err, tt.ok)
			continue
		}
		if s != tt.want {
			t.Errorf("%d: decodeUTF16(% x) = %q; want %q", i, tt.in, s, tt.want)
		}
	}
}
