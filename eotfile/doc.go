/*
Package eotfile decodes Embedded OpenType (EOT) font containers.

An EOT file is a little-endian wrapper around a TrueType or OpenType font,
carrying a copy of some of the font's metadata (names, PANOSE, OS/2 ranges)
plus web-embedding restrictions. Package eotfile reads such a container in a
single linear pass and exposes the embedded font data. It does not interpret
the font data itself; clients may hand it to an SFNT parser, e.g.
golang.org/x/image/font/sfnt.

Three versions of the container are known. Every version adds fields at the
end of the previous one:

	0x00010000   header, names, font data
	0x00020001   header, names, root strings, font data
	0x00020002   header, names, root strings, EUDC section, font data

Use Sections to enumerate the field groups present for a given version.

MicroType Express compression and XOR obfuscation of the font data are not
supported. Containers flagged with either are rejected with
ErrUnsupportedCompression or ErrUnsupportedEncryption, respectively.

# Status

Read-only. There is no encoder.

The root string checksum is stored as read from the container and is never
validated during decoding. Record.ComputeRootStringCheckSum is available for
clients who want to compare it themselves.

# Links

EOT submission to the W3C:
https://www.w3.org/submissions/EOT/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eotfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'eot.file'
func tracer() tracing.Trace {
	return tracing.Select("eot.file")
}
