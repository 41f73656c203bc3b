package eotfile

import (
	"fmt"
	"strings"
)

// --- Validation constants --------------------------------------------------

// MagicNumber must appear at byte offset 34 of every container.
const MagicNumber uint16 = 0x504C

// RootStringCheckSumXORKey is the key the root string checksum is XOR-ed with
// (EOT submission, section 4.3.2).
const RootStringCheckSumXORKey uint32 = 0x50475342

// XORKey is the key an obfuscated font payload is XOR-ed with (section 4.4).
// Decoding refuses such payloads; the key is listed for completeness.
const XORKey byte = 0x50

// --- Versions --------------------------------------------------------------

// Version is the value of a container's Version field.
type Version uint32

// Known container versions.
const (
	Version1  Version = 0x00010000
	Version21 Version = 0x00020001
	Version22 Version = 0x00020002
)

// IsKnown reports whether v is one of the three known versions.
func (v Version) IsKnown() bool {
	return v == Version1 || v == Version21 || v == Version22
}

func (v Version) String() string {
	return fmt.Sprintf("0x%08X", uint32(v))
}

// --- Processing flags ------------------------------------------------------

// ProcessingFlags is the bitmask of the Flags and EUDCFlags fields.
type ProcessingFlags uint32

// Processing flags, see section 4.2 of the EOT submission.
const (
	FlagSubset                   ProcessingFlags = 0x00000001
	FlagTTCompressed             ProcessingFlags = 0x00000004
	FlagFailIfVariationSimulated ProcessingFlags = 0x00000010
	FlagEmbedEUDC                ProcessingFlags = 0x00000020
	FlagValidationTests          ProcessingFlags = 0x00000040
	FlagWebObject                ProcessingFlags = 0x00000080
	FlagXOREncryptData           ProcessingFlags = 0x10000000
)

var flagNames = []struct {
	flag ProcessingFlags
	name string
}{
	{FlagSubset, "Subset"},
	{FlagTTCompressed, "TTCompressed"},
	{FlagFailIfVariationSimulated, "FailIfVariationSimulated"},
	{FlagEmbedEUDC, "EmbedEUDC"},
	{FlagValidationTests, "ValidationTests"},
	{FlagWebObject, "WebObject"},
	{FlagXOREncryptData, "XOREncryptData"},
}

// Has reports whether all bits of flag are set in f.
func (f ProcessingFlags) Has(flag ProcessingFlags) bool {
	return f&flag == flag
}

// String lists the names of the set flags, separated by '|'.
// Unnamed bits are appended in hex.
func (f ProcessingFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	rest := f
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%08X", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// --- Embedding permissions -------------------------------------------------

// EmbeddingFlags is the bitmask of the fsType field, as copied from the
// embedded font's OS/2 table.
type EmbeddingFlags uint16

// Embedding levels, see section 4.1 of the EOT submission.
const (
	EmbeddingInstallable       EmbeddingFlags = 0x0000
	EmbeddingRestrictedLicense EmbeddingFlags = 0x0002
	EmbeddingPreviewPrint      EmbeddingFlags = 0x0004
	EmbeddingEditable          EmbeddingFlags = 0x0008
	EmbeddingNoSubsetting      EmbeddingFlags = 0x0100
	EmbeddingBitmapOnly        EmbeddingFlags = 0x0200
)

var embeddingNames = []struct {
	flag EmbeddingFlags
	name string
}{
	{EmbeddingRestrictedLicense, "RestrictedLicense"},
	{EmbeddingPreviewPrint, "PreviewPrint"},
	{EmbeddingEditable, "Editable"},
	{EmbeddingNoSubsetting, "NoSubsetting"},
	{EmbeddingBitmapOnly, "BitmapOnly"},
}

// Has reports whether all bits of flag are set in e.
func (e EmbeddingFlags) Has(flag EmbeddingFlags) bool {
	return e&flag == flag
}

// String lists the set embedding levels, or "Installable" if none is set.
func (e EmbeddingFlags) String() string {
	if e == EmbeddingInstallable {
		return "Installable"
	}
	var names []string
	rest := e
	for _, en := range embeddingNames {
		if e.Has(en.flag) {
			names = append(names, en.name)
			rest &^= en.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%04X", uint16(rest)))
	}
	return strings.Join(names, "|")
}
