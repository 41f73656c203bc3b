package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/eotquery"
	"github.com/thatisuday/commando"
)

func runExtractCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	path := strings.TrimSpace(args["eot"].Value)
	if path == "" {
		fatalf("EOT path is required")
	}
	rec := mustLoadEOT(path)
	out := optionalString(flags["output"], "output")
	if out == "" {
		out = fontFileName(path, filepath.Dir(path), rec)
	}
	if err := os.WriteFile(out, rec.FontData, 0o644); err != nil {
		fatalf("cannot write font data: %v", err)
	}
	tracer().Infof("wrote %d bytes to %s", len(rec.FontData), out)
}

// fontFileName derives the output path for the font embedded in the container
// at eotPath: same base name, extension by font type.
func fontFileName(eotPath string, dir string, rec *eotfile.Record) string {
	base := strings.TrimSuffix(filepath.Base(eotPath), filepath.Ext(eotPath))
	ext := ".ttf"
	if eotquery.FontType(rec) == "OpenType" {
		ext = ".otf"
	}
	return filepath.Join(dir, base+ext)
}
