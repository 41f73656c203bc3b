package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "layout", "version", "versions":
		pterm.Info.Println("Container Layout")
		pterm.Println(`
	Every EOT version appends fields to the previous one:
	+------------+------------------------------------------------+
	| 0x00010000 | header, names, font data                       |
	| 0x00020001 | header, names, root strings, font data         |
	| 0x00020002 | header, names, root strings, EUDC, font data   |
	+------------+------------------------------------------------+
	`)
	case "flags", "flag":
		pterm.Info.Println("Processing Flags")
		pterm.Println(`
	Subset 0x1, TTCompressed 0x4, FailIfVariationSimulated 0x10,
	EmbedEUDC 0x20, ValidationTests 0x40, WebObject 0x80, XOREncryptData 0x10000000.
	Containers with TTCompressed or XOREncryptData cannot be loaded.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	header            print header fields
	names             print family, style, version and full name
	roots             print root strings (permitted origins)
	eudc              print EUDC section
	flags             print processing flags and embedding permissions
	tables            list tables of the embedded font
	check             compare names and checksum with the embedded font
	extract:<file>    write the embedded font to <file>
	help:<topic>      topics: layout, flags
	quit              leave
	`)
	}
}
