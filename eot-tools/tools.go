package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'eot.tools'
func tracer() tracing.Trace {
	return tracing.Select("eot.tools")
}

func main() {
	commando.
		SetExecutableName("eot-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting Embedded OpenType containers and extracting their fonts.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("info").
		SetDescription("Print the header, names and root strings of an EOT container.").
		SetShortDescription("container diagnostics").
		AddArgument("eot", "EOT file path", "").
		AddFlag("check,c", "compare names and checksum with the embedded font", commando.Bool, nil).
		AddFlag("tables,t", "list the tables of the embedded font", commando.Bool, nil).
		SetAction(runInfoCommand)

	commando.
		Register("extract").
		SetDescription("Write the font embedded in an EOT container to a file.").
		SetShortDescription("extract font").
		AddArgument("eot", "EOT file path", "").
		AddFlag("output,o", "output font file (default: input name with .ttf/.otf)", commando.String, "-").
		SetAction(runExtractCommand)

	commando.
		Register("batch").
		SetDescription("Extract the fonts of all .eot files in a directory. Containers with unsupported font data encodings are skipped.").
		SetShortDescription("extract fonts of a directory").
		AddArgument("dir", "directory containing .eot files", "").
		AddFlag("output,o", "output directory (default: same as input)", commando.String, "-").
		SetAction(runBatchCommand)

	commando.Parse(nil)
}

func mustLoadEOT(path string) *eotfile.Record {
	rec, err := fontload.LoadEOT(path)
	if err != nil {
		fatalf("cannot load EOT %s: %v", path, err)
	}
	return rec
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

// optionalString reads a string flag whose default is "-", meaning unset.
func optionalString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "eot-tools: "+format+"\n", args...)
	os.Exit(1)
}
