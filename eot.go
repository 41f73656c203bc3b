/*
Package eot extracts fonts from Embedded OpenType (EOT) containers.

EOT is a legacy web-font format, a wrapper around a TrueType or OpenType font
plus metadata and embedding restrictions. Package eot is a convenience layer:
it decodes a container with package eotfile and parses the embedded font data
with golang.org/x/image/font/sfnt.

Clients who only need the container's fields, or who want to inspect
containers whose payload is not a valid SFNT font, use package eotfile
directly.

# Status

Compressed (MicroType Express) and XOR-obfuscated font data is not supported.

# Links

EOT explained:
https://www.w3.org/submissions/EOT/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eot

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'eot'
func tracer() tracing.Trace {
	return tracing.Select("eot")
}

// EmbeddedFont is a decoded EOT container together with a parsed view of
// the font it carries.
type EmbeddedFont struct {
	Record   *eotfile.Record // the container's fields
	Fontname string          // full name from the embedded font's 'name' table
	SFNT     *sfnt.Font      // the embedded font
}

// LoadEOT loads an EOT container from a file.
func LoadEOT(path string) (*EmbeddedFont, error) {
	rec, err := fontload.LoadEOT(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}
	return fromRecord(rec)
}

// ParseEOT decodes an EOT container from memory.
// The returned EmbeddedFont does not reference b.
func ParseEOT(b []byte) (*EmbeddedFont, error) {
	rec, err := eotfile.Decode(b)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec)
}

func fromRecord(rec *eotfile.Record) (*EmbeddedFont, error) {
	f, err := fontload.ParseSFNT(rec.FontData)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("extracted SFNT %q from EOT %s", f.Fontname, rec.Version)
	return &EmbeddedFont{
		Record:   rec,
		Fontname: f.Fontname,
		SFNT:     f.SFNT,
	}, nil
}

// FontData returns the raw bytes of the embedded font.
func (ef *EmbeddedFont) FontData() []byte {
	return ef.Record.FontData
}

// WriteFontData writes the raw bytes of the embedded font to w, e.g., to
// convert an .eot file to a .ttf file.
func (ef *EmbeddedFont) WriteFontData(w io.Writer) (int64, error) {
	return bytes.NewReader(ef.Record.FontData).WriteTo(w)
}
