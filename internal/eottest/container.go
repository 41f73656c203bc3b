/*
Package eottest assembles EOT containers for tests.

It writes every field verbatim, including invalid values, so tests can craft
containers which violate exactly one rule. It is not a general encoder: sizes
are derived from the content, and EOTSize always states the total length.
*/
package eottest

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// Container versions, as written to the Version field.
const (
	Version1  uint32 = 0x00010000
	Version21 uint32 = 0x00020001
	Version22 uint32 = 0x00020002
)

// Container holds the field values of a container to assemble.
type Container struct {
	Version            uint32
	Flags              uint32
	PANOSE             [10]byte
	Charset, Italic    byte
	Weight             uint32
	FsType             uint16
	Magic              uint16
	UnicodeRange       [4]uint32
	CodePageRange      [2]uint32
	CheckSumAdjustment uint32
	Reserved           [4]uint32
	Padding            [6]uint16 // Padding1..6
	Family             string
	Style              string
	VersionName        string
	Full               string
	RawFamily          []byte // if set, written instead of the encoded family name
	RootString         string
	RawRootString      []byte // if set, written instead of the encoded root string
	RootStringCheckSum uint32
	EUDCCodePage       uint32
	Signature          []byte
	EUDCFlags          uint32
	EUDCFontData       []byte
	FontData           []byte
}

// Valid returns a container of the given version which decodes without
// errors. Its names mimic a small web font.
func Valid(version uint32) *Container {
	return &Container{
		Version:            version,
		PANOSE:             [10]byte{2, 0, 5, 9, 0, 0, 0, 0, 0, 0},
		Charset:            1,
		Weight:             400,
		Magic:              0x504C,
		UnicodeRange:       [4]uint32{3, 0, 0, 0},
		CodePageRange:      [2]uint32{1, 0},
		CheckSumAdjustment: 3236315134,
		Family:             "Maki",
		Style:              "Regular",
		VersionName:        "Version 001.000",
		Full:               "Maki",
		RootString:         "http://example.com/\x00https://example.org/",
		RootStringCheckSum: 0x12345678,
		EUDCCodePage:       1252,
		EUDCFontData:       []byte{0xCA, 0xFE},
		FontData:           []byte{0x00, 0x01, 0x00, 0x00, 0xDE, 0xAD, 0xBE, 0xEF},
	}
}

// UTF16 encodes s as UTF-16 little-endian without byte order mark.
func UTF16(s string) []byte {
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return b
}

// Bytes assembles the container.
func (c *Container) Bytes() []byte {
	le := binary.LittleEndian
	b := make([]byte, 0, 256+len(c.FontData))
	b = le.AppendUint32(b, 0) // EOTSize, patched below
	b = le.AppendUint32(b, uint32(len(c.FontData)))
	b = le.AppendUint32(b, c.Version)
	b = le.AppendUint32(b, c.Flags)
	b = append(b, c.PANOSE[:]...)
	b = append(b, c.Charset, c.Italic)
	b = le.AppendUint32(b, c.Weight)
	b = le.AppendUint16(b, c.FsType)
	b = le.AppendUint16(b, c.Magic)
	for _, x := range c.UnicodeRange {
		b = le.AppendUint32(b, x)
	}
	for _, x := range c.CodePageRange {
		b = le.AppendUint32(b, x)
	}
	b = le.AppendUint32(b, c.CheckSumAdjustment)
	for _, x := range c.Reserved {
		b = le.AppendUint32(b, x)
	}
	family := c.RawFamily
	if family == nil {
		family = UTF16(c.Family)
	}
	names := [][]byte{family, UTF16(c.Style), UTF16(c.VersionName), UTF16(c.Full)}
	for i, name := range names {
		b = le.AppendUint16(b, c.Padding[i])
		b = le.AppendUint16(b, uint16(len(name)))
		b = append(b, name...)
	}
	if c.Version > Version1 {
		root := c.RawRootString
		if root == nil {
			root = UTF16(c.RootString)
		}
		b = le.AppendUint16(b, c.Padding[4])
		b = le.AppendUint16(b, uint16(len(root)))
		b = append(b, root...)
	}
	if c.Version > Version21 {
		b = le.AppendUint32(b, c.RootStringCheckSum)
		b = le.AppendUint32(b, c.EUDCCodePage)
		b = le.AppendUint16(b, c.Padding[5])
		b = le.AppendUint16(b, uint16(len(c.Signature)))
		b = append(b, c.Signature...)
		b = le.AppendUint32(b, c.EUDCFlags)
		b = le.AppendUint32(b, uint32(len(c.EUDCFontData)))
		b = append(b, c.EUDCFontData...)
	}
	b = append(b, c.FontData...)
	le.PutUint32(b, uint32(len(b)))
	return b
}
