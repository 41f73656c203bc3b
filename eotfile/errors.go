package eotfile

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the ways decoding a container may fail.
type ErrorKind int

const (
	KindTruncatedInput         ErrorKind = iota + 1 // a read needed more bytes than remained
	KindUnknownVersion                              // version is none of the known constants
	KindBadMagic                                    // magic number is not 0x504C
	KindNonZeroReserved                             // one of Reserved1..4 is non-zero
	KindBadPadding                                  // one of Padding1..6 is non-zero
	KindInvalidText                                 // a UTF-16 field cannot be decoded
	KindUnexpectedSignature                         // signature size is non-zero
	KindUnsupportedCompression                      // MicroType Express compressed font data
	KindUnsupportedEncryption                       // XOR obfuscated font data
)

var kindNames = [...]string{
	"UNKNOWN",
	"TRUNCATED",
	"VERSION",
	"MAGIC",
	"RESERVED",
	"PADDING",
	"TEXT",
	"SIGNATURE",
	"COMPRESSION",
	"ENCRYPTION",
}

// String returns a short upper-case label for the kind.
func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return kindNames[0]
	}
	return kindNames[k]
}

// Sentinel errors, one per ErrorKind. A *DecodeError matches the sentinel of
// its kind with errors.Is.
var (
	ErrTruncatedInput         = errors.New("eot: truncated input")
	ErrUnknownVersion         = errors.New("eot: unknown version")
	ErrBadMagic               = errors.New("eot: bad magic number")
	ErrNonZeroReserved        = errors.New("eot: non-zero reserved field")
	ErrBadPadding             = errors.New("eot: non-zero padding")
	ErrInvalidText            = errors.New("eot: invalid UTF-16 text")
	ErrUnexpectedSignature    = errors.New("eot: unexpected signature")
	ErrUnsupportedCompression = errors.New("eot: MicroType Express compression not supported")
	ErrUnsupportedEncryption  = errors.New("eot: XOR encryption not supported")
)

var sentinels = map[ErrorKind]error{
	KindTruncatedInput:         ErrTruncatedInput,
	KindUnknownVersion:         ErrUnknownVersion,
	KindBadMagic:               ErrBadMagic,
	KindNonZeroReserved:        ErrNonZeroReserved,
	KindBadPadding:             ErrBadPadding,
	KindInvalidText:            ErrInvalidText,
	KindUnexpectedSignature:    ErrUnexpectedSignature,
	KindUnsupportedCompression: ErrUnsupportedCompression,
	KindUnsupportedEncryption:  ErrUnsupportedEncryption,
}

// DecodeError represents an error encountered while decoding a container.
// Decoding stops at the first error; there are no partial results.
type DecodeError struct {
	Kind   ErrorKind // what went wrong
	Field  string    // container field, named as in the EOT submission (e.g., "Padding3")
	Index  int       // 1-based index for Reserved and Padding fields, 0 otherwise
	Offset uint32    // byte offset of the field within the container
	Value  uint32    // offending value, or number of bytes requested for truncation
	Issue  string    // human-readable description
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s at offset %d: %s", e.Kind, e.Field, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Field, e.Issue)
}

// Unwrap returns the sentinel error for e's kind, which makes
// errors.Is(err, ErrBadPadding) and the like work.
func (e *DecodeError) Unwrap() error {
	return sentinels[e.Kind]
}

// KindOf extracts the ErrorKind of err. It returns 0 if err does not stem
// from decoding a container.
func KindOf(err error) ErrorKind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
