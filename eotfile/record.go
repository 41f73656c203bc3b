package eotfile

import (
	"strings"
)

// Record is a decoded EOT container. Field names follow the EOT submission,
// section 3. A Record owns all of its byte slices and strings; it does not
// alias the buffer it has been decoded from.
//
// Fields which are not present in the container's version keep their
// zero-like defaults: RootStrings is empty, RootStringCheckSum and
// EUDCCodePage are None, Signature is "", EUDCFlags is 0 and EUDCFontData
// is empty.
type Record struct {
	EOTSize            uint32          // total container size, as declared
	Version            Version         // one of Version1, Version21, Version22
	Flags              ProcessingFlags // processing flags
	PANOSE             [10]byte        // PANOSE classification, copied from OS/2
	Charset            byte            // charset, as for LOGFONT
	Italic             byte            // 1 for italic fonts
	Weight             uint32          // weight, copied from OS/2
	FsType             EmbeddingFlags  // embedding permissions, copied from OS/2
	UnicodeRange       [4]uint32       // ulUnicodeRange1..4, copied from OS/2
	CodePageRange      [2]uint32       // ulCodePageRange1..2, copied from OS/2
	CheckSumAdjustment uint32          // copied from head

	FamilyName  string
	StyleName   string
	VersionName string
	FullName    string

	RootStrings        []string        // permitted origins; version ≥ 0x00020001
	RootStringCheckSum Option[uint32]  // stored, not verified; version 0x00020002
	EUDCCodePage       Option[uint32]  // version 0x00020002
	Signature          string          // always empty
	EUDCFlags          ProcessingFlags // version 0x00020002
	EUDCFontData       []byte          // version 0x00020002
	FontData           []byte          // the embedded font
}

// ComputeRootStringCheckSum calculates the checksum of the root string as
// described in section 4.3.2 of the EOT submission: the sum of all bytes of
// the UTF-16LE encoded root string, XOR-ed with RootStringCheckSumXORKey.
//
// Decoding never compares the result to RootStringCheckSum.
// The second return value is false if the container has no root string.
func (rec *Record) ComputeRootStringCheckSum() (uint32, bool) {
	if rec.Version == Version1 {
		return 0, false
	}
	b, err := encodeUTF16(strings.Join(rec.RootStrings, "\x00"))
	if err != nil {
		return 0, false
	}
	var sum uint32
	for _, x := range b {
		sum += uint32(x)
	}
	return sum ^ RootStringCheckSumXORKey, true
}
