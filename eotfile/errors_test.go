package eotfile

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindTruncatedInput, "TRUNCATED"},
		{KindBadPadding, "PADDING"},
		{KindUnsupportedEncryption, "ENCRYPTION"},
		{ErrorKind(0), "UNKNOWN"},
		{ErrorKind(999), "UNKNOWN"},
	}
	for _, tt := range tests {
		if s := tt.kind.String(); s != tt.expected {
			t.Errorf("ErrorKind(%d).String() = %q; want %q", tt.kind, s, tt.expected)
		}
	}
}

func TestDecodeErrorFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      *DecodeError
		expected string
	}{
		{
			name: "with offset",
			err: &DecodeError{
				Kind:   KindBadMagic,
				Field:  "MagicNumber",
				Offset: 34,
				Issue:  "expected 0x504C, have 0x0000",
			},
			expected: "[MAGIC] MagicNumber at offset 34: expected 0x504C, have 0x0000",
		},
		{
			name: "without offset",
			err: &DecodeError{
				Kind:  KindTruncatedInput,
				Field: "EOTSize",
				Issue: "need more bytes than remain in buffer",
			},
			expected: "[TRUNCATED] EOTSize: need more bytes than remain in buffer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s := tt.err.Error(); s != tt.expected {
				t.Errorf("DecodeError.Error() = %q; want %q", s, tt.expected)
			}
		})
	}
}

func TestDecodeErrorMatchesSentinel(t *testing.T) {
	for kind, sentinel := range sentinels {
		err := fmt.Errorf("wrapped: %w", &DecodeError{Kind: kind})
		if !errors.Is(err, sentinel) {
			t.Errorf("expected %s error to match %v", kind, sentinel)
		}
		if KindOf(err) != kind {
			t.Errorf("KindOf = %s; want %s", KindOf(err), kind)
		}
		for other, s := range sentinels {
			if other != kind && errors.Is(err, s) {
				t.Errorf("%s error must not match %v", kind, s)
			}
		}
	}
	if KindOf(errors.New("other")) != 0 {
		t.Errorf("expected foreign error to have kind 0")
	}
}
