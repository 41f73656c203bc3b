/*
Package eotquery answers questions about decoded EOT containers.

Some fields of an EOT header are copies of values found in the embedded
font (names from table 'name', the checksum adjustment from table 'head',
PANOSE, weight and ranges from table 'OS/2'). Functions in this package give
readable views of the header and compare the copies with the embedded font.
Interpretation of the font data is delegated to golang.org/x/image/font/sfnt
and github.com/go-text/typesetting.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eotquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'eot.query'
func tracer() tracing.Trace {
	return tracing.Select("eot.query")
}
