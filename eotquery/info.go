package eotquery

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/npillmayer/eot/eotfile"
)

// FontType inspects the first bytes of the embedded font data and returns
// "TrueType", "OpenType" (CFF outlines), "Collection" or "unknown".
func FontType(rec *eotfile.Record) string {
	if rec == nil || len(rec.FontData) < 4 {
		return "unknown"
	}
	switch binary.BigEndian.Uint32(rec.FontData[:4]) {
	case 0x00010000, 0x74727565: // 'true'
		return "TrueType"
	case 0x4f54544f: // 'OTTO'
		return "OpenType"
	case 0x74746366: // 'ttcf'
		return "Collection"
	}
	return "unknown"
}

// EmbeddingInfo describes the embedding permissions of the font in plain words.
func EmbeddingInfo(rec *eotfile.Record) string {
	if rec == nil {
		return ""
	}
	fs := rec.FsType
	var parts []string
	switch {
	case fs.Has(eotfile.EmbeddingRestrictedLicense):
		parts = append(parts, "must not be embedded")
	case fs.Has(eotfile.EmbeddingEditable):
		parts = append(parts, "may be embedded for editing")
	case fs.Has(eotfile.EmbeddingPreviewPrint):
		parts = append(parts, "may be embedded for preview and print")
	default:
		parts = append(parts, "may be installed")
	}
	if fs.Has(eotfile.EmbeddingNoSubsetting) {
		parts = append(parts, "no subsetting")
	}
	if fs.Has(eotfile.EmbeddingBitmapOnly) {
		parts = append(parts, "bitmaps only")
	}
	return fmt.Sprintf("%s (%s)", strings.Join(parts, ", "), fs)
}

// FlagInfo describes the processing flags of the container and, if present,
// of its EUDC section.
func FlagInfo(rec *eotfile.Record) string {
	if rec == nil {
		return ""
	}
	s := "flags: " + rec.Flags.String()
	if rec.Version == eotfile.Version22 {
		s += "; EUDC flags: " + rec.EUDCFlags.String()
	}
	return s
}

// HeaderInfo lists the container's header fields as (label, value) pairs in
// layout order, ready for printing.
func HeaderInfo(rec *eotfile.Record) [][2]string {
	if rec == nil {
		return nil
	}
	info := [][2]string{
		{"EOTSize", fmt.Sprintf("%d", rec.EOTSize)},
		{"FontDataSize", fmt.Sprintf("%d", len(rec.FontData))},
		{"Version", rec.Version.String()},
		{"Flags", rec.Flags.String()},
		{"FontPANOSE", fmt.Sprintf("% x", rec.PANOSE[:])},
		{"Charset", fmt.Sprintf("%d", rec.Charset)},
		{"Italic", fmt.Sprintf("%d", rec.Italic)},
		{"Weight", fmt.Sprintf("%d", rec.Weight)},
		{"fsType", rec.FsType.String()},
	}
	for i, r := range rec.UnicodeRange {
		info = append(info, [2]string{fmt.Sprintf("UnicodeRange%d", i+1), fmt.Sprintf("0x%08X", r)})
	}
	for i, r := range rec.CodePageRange {
		info = append(info, [2]string{fmt.Sprintf("CodePageRange%d", i+1), fmt.Sprintf("0x%08X", r)})
	}
	info = append(info, [2]string{"CheckSumAdjustment", fmt.Sprintf("0x%08X", rec.CheckSumAdjustment)})
	if v, ok := rec.RootStringCheckSum.Unwrap(); ok {
		info = append(info, [2]string{"RootStringCheckSum", fmt.Sprintf("0x%08X (unverified)", v)})
	}
	if v, ok := rec.EUDCCodePage.Unwrap(); ok {
		info = append(info, [2]string{"EUDCCodePage", fmt.Sprintf("%d", v)})
	}
	return info
}
