package eotfile

import (
	"fmt"
	"strings"
)

// Section is a group of consecutive container fields.
type Section int

// Sections of a container, in layout order.
const (
	SectionHeader      Section = iota // EOTSize … Reserved4
	SectionNames                      // Padding1 … FullName
	SectionRootStrings                // Padding5, RootStringSize, RootString
	SectionEUDC                       // RootStringCheckSum … EUDCFontData
	SectionFontData                   // FontData
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "Header"
	case SectionNames:
		return "Names"
	case SectionRootStrings:
		return "RootStrings"
	case SectionEUDC:
		return "EUDC"
	case SectionFontData:
		return "FontData"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// layouts lists the sections present for every known version.
var layouts = map[Version][]Section{
	Version1:  {SectionHeader, SectionNames, SectionFontData},
	Version21: {SectionHeader, SectionNames, SectionRootStrings, SectionFontData},
	Version22: {SectionHeader, SectionNames, SectionRootStrings, SectionEUDC, SectionFontData},
}

// Sections returns the sections a container of version v consists of, in
// layout order. It returns nil for unknown versions.
func Sections(v Version) []Section {
	l, ok := layouts[v]
	if !ok {
		return nil
	}
	return append([]Section(nil), l...)
}

// decoder holds the state of a single call to Decode.
type decoder struct {
	c            *Cursor
	rec          *Record
	fontDataSize uint32
	eudcFlagsAt  uint32
}

var sectionDecoders = map[Section]func(*decoder) error{
	SectionHeader:      (*decoder).header,
	SectionNames:       (*decoder).names,
	SectionRootStrings: (*decoder).rootStrings,
	SectionEUDC:        (*decoder).eudc,
	SectionFontData:    (*decoder).fontData,
}

// Decode decodes an EOT container from b.
//
// Decoding is a single forward pass over b. The first structural violation
// aborts it and is returned as a *DecodeError; no partially filled Record is
// ever returned. Containers with compressed or XOR-encrypted font data are
// rejected after the structure has been read completely.
//
// b is not modified and not retained. Decode is safe for concurrent use.
func Decode(b []byte) (*Record, error) {
	d := &decoder{
		c: NewCursor(b),
		rec: &Record{
			RootStringCheckSum: None[uint32](),
			EUDCCodePage:       None[uint32](),
		},
	}
	if err := d.header(); err != nil {
		return nil, err
	}
	layout := layouts[d.rec.Version]
	tracer().Debugf("EOT version %s, sections %v", d.rec.Version, layout)
	for _, s := range layout[1:] {
		if err := sectionDecoders[s](d); err != nil {
			return nil, err
		}
	}
	if err := d.checkSupported(); err != nil {
		return nil, err
	}
	if d.c.Remaining() > 0 {
		tracer().Debugf("%d trailing bytes after font data", d.c.Remaining())
	}
	return d.rec, nil
}

// --- Sections --------------------------------------------------------------

func (d *decoder) header() (err error) {
	r := d.rec
	if r.EOTSize, err = d.c.ReadU32LE("EOTSize"); err != nil {
		return
	}
	if d.fontDataSize, err = d.c.ReadU32LE("FontDataSize"); err != nil {
		return
	}
	at := d.offset()
	var v uint32
	if v, err = d.c.ReadU32LE("Version"); err != nil {
		return
	}
	r.Version = Version(v)
	if !r.Version.IsKnown() {
		return &DecodeError{
			Kind:   KindUnknownVersion,
			Field:  "Version",
			Offset: at,
			Value:  v,
			Issue:  fmt.Sprintf("unknown version %s", r.Version),
		}
	}
	var flags uint32
	if flags, err = d.c.ReadU32LE("Flags"); err != nil {
		return
	}
	r.Flags = ProcessingFlags(flags)
	var panose []byte
	if panose, err = d.c.ReadBytes(len(r.PANOSE), "FontPANOSE"); err != nil {
		return
	}
	copy(r.PANOSE[:], panose)
	if r.Charset, err = d.c.ReadU8("Charset"); err != nil {
		return
	}
	if r.Italic, err = d.c.ReadU8("Italic"); err != nil {
		return
	}
	if r.Weight, err = d.c.ReadU32LE("Weight"); err != nil {
		return
	}
	var fsType uint16
	if fsType, err = d.c.ReadU16LE("fsType"); err != nil {
		return
	}
	r.FsType = EmbeddingFlags(fsType)
	at = d.offset()
	var magic uint16
	if magic, err = d.c.ReadU16LE("MagicNumber"); err != nil {
		return
	}
	if magic != MagicNumber {
		return &DecodeError{
			Kind:   KindBadMagic,
			Field:  "MagicNumber",
			Offset: at,
			Value:  uint32(magic),
			Issue:  fmt.Sprintf("expected 0x%04X, have 0x%04X", MagicNumber, magic),
		}
	}
	for i := range r.UnicodeRange {
		field := fmt.Sprintf("UnicodeRange%d", i+1)
		if r.UnicodeRange[i], err = d.c.ReadU32LE(field); err != nil {
			return
		}
	}
	for i := range r.CodePageRange {
		field := fmt.Sprintf("CodePageRange%d", i+1)
		if r.CodePageRange[i], err = d.c.ReadU32LE(field); err != nil {
			return
		}
	}
	if r.CheckSumAdjustment, err = d.c.ReadU32LE("CheckSumAdjustment"); err != nil {
		return
	}
	for i := 1; i <= 4; i++ {
		field := fmt.Sprintf("Reserved%d", i)
		at = d.offset()
		var reserved uint32
		if reserved, err = d.c.ReadU32LE(field); err != nil {
			return
		}
		if reserved != 0 {
			return &DecodeError{
				Kind:   KindNonZeroReserved,
				Field:  field,
				Index:  i,
				Offset: at,
				Value:  reserved,
				Issue:  fmt.Sprintf("reserved field has value 0x%08X", reserved),
			}
		}
	}
	return nil
}

func (d *decoder) names() (err error) {
	targets := []struct {
		name string
		dest *string
	}{
		{"FamilyName", &d.rec.FamilyName},
		{"StyleName", &d.rec.StyleName},
		{"VersionName", &d.rec.VersionName},
		{"FullName", &d.rec.FullName},
	}
	for i, t := range targets {
		if err = d.padding(i + 1); err != nil {
			return
		}
		if *t.dest, err = d.text(t.name); err != nil {
			return
		}
	}
	tracer().Debugf("EOT font name is %q", d.rec.FullName)
	return nil
}

// rootStrings reads the root string. Multiple origins are separated by
// NUL characters; the split keeps empty segments.
func (d *decoder) rootStrings() (err error) {
	if err = d.padding(5); err != nil {
		return
	}
	var s string
	if s, err = d.text("RootString"); err != nil {
		return
	}
	d.rec.RootStrings = strings.Split(s, "\x00")
	return nil
}

func (d *decoder) eudc() (err error) {
	r := d.rec
	var n uint32
	if n, err = d.c.ReadU32LE("RootStringCheckSum"); err != nil {
		return
	}
	r.RootStringCheckSum = Some(n)
	if n, err = d.c.ReadU32LE("EUDCCodePage"); err != nil {
		return
	}
	r.EUDCCodePage = Some(n)
	if err = d.padding(6); err != nil {
		return
	}
	at := d.offset()
	var size uint16
	if size, err = d.c.ReadU16LE("SignatureSize"); err != nil {
		return
	}
	if size != 0 {
		return &DecodeError{
			Kind:   KindUnexpectedSignature,
			Field:  "SignatureSize",
			Offset: at,
			Value:  uint32(size),
			Issue:  fmt.Sprintf("signature size must be 0, is %d", size),
		}
	}
	if r.Signature, err = d.textOfSize("Signature", at+2, int(size)); err != nil {
		return
	}
	d.eudcFlagsAt = d.offset()
	if n, err = d.c.ReadU32LE("EUDCFlags"); err != nil {
		return
	}
	r.EUDCFlags = ProcessingFlags(n)
	if n, err = d.c.ReadU32LE("EUDCFontSize"); err != nil {
		return
	}
	r.EUDCFontData, err = d.c.ReadBytes(int(n), "EUDCFontData")
	return
}

func (d *decoder) fontData() (err error) {
	d.rec.FontData, err = d.c.ReadBytes(int(d.fontDataSize), "FontData")
	return
}

// checkSupported rejects font data which has been transformed in a way we
// cannot undo.
func (d *decoder) checkSupported() error {
	checks := []struct {
		field string
		at    uint32
		flags ProcessingFlags
	}{
		{"Flags", 12, d.rec.Flags},
		{"EUDCFlags", d.eudcFlagsAt, d.rec.EUDCFlags},
	}
	for _, c := range checks {
		if c.flags.Has(FlagTTCompressed) {
			return &DecodeError{
				Kind:   KindUnsupportedCompression,
				Field:  c.field,
				Offset: c.at,
				Value:  uint32(c.flags),
				Issue:  "MicroType Express compressed font data is not supported",
			}
		}
		if c.flags.Has(FlagXOREncryptData) {
			return &DecodeError{
				Kind:   KindUnsupportedEncryption,
				Field:  c.field,
				Offset: c.at,
				Value:  uint32(c.flags),
				Issue:  "XOR encrypted font data is not supported",
			}
		}
	}
	return nil
}

// --- Field helpers ---------------------------------------------------------

func (d *decoder) offset() uint32 {
	return uint32(d.c.Offset())
}

// padding reads Padding<i>, which has to be zero.
func (d *decoder) padding(i int) error {
	field := fmt.Sprintf("Padding%d", i)
	at := d.offset()
	p, err := d.c.ReadU16LE(field)
	if err != nil {
		return err
	}
	if p != 0 {
		return &DecodeError{
			Kind:   KindBadPadding,
			Field:  field,
			Index:  i,
			Offset: at,
			Value:  uint32(p),
			Issue:  fmt.Sprintf("padding has value 0x%04X", p),
		}
	}
	return nil
}

// text reads a UTF-16 string prefixed by a 16-bit byte count.
func (d *decoder) text(name string) (string, error) {
	size, err := d.c.ReadU16LE(name + "Size")
	if err != nil {
		return "", err
	}
	return d.textOfSize(name, d.offset(), int(size))
}

func (d *decoder) textOfSize(name string, at uint32, size int) (string, error) {
	b, err := d.c.ReadBytes(size, name)
	if err != nil {
		return "", err
	}
	s, err := decodeUTF16(b)
	if err != nil {
		return "", &DecodeError{
			Kind:   KindInvalidText,
			Field:  name,
			Offset: at,
			Value:  uint32(size),
			Issue:  err.Error(),
		}
	}
	return s, nil
}
