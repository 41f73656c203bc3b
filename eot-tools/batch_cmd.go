package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/internal/fontload"
	"github.com/thatisuday/commando"
)

func runBatchCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	dir := strings.TrimSpace(args["dir"].Value)
	if dir == "" {
		fatalf("directory is required")
	}
	out := optionalString(flags["output"], "output")
	if out == "" {
		out = dir
	}
	report, err := extractAll(dir, out, os.Stdout)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("extracted %d, skipped %d, failed %d\n",
		len(report.Extracted), len(report.Skipped), len(report.Failed))
	if len(report.Failed) > 0 {
		os.Exit(2)
	}
}

type batchReport struct {
	Extracted []string
	Skipped   []string // unsupported font data encoding
	Failed    []string
}

// extractAll extracts the fonts of all .eot files in dir to outDir.
// Containers with compressed or encrypted font data are skipped, all other
// decoding errors are reported as failures. A failing file does not stop the
// batch.
func extractAll(dir string, outDir string, w io.Writer) (batchReport, error) {
	var report batchReport
	entries, err := os.ReadDir(dir)
	if err != nil {
		return report, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".eot") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		rec, err := fontload.LoadEOT(path)
		switch {
		case errors.Is(err, eotfile.ErrUnsupportedCompression), errors.Is(err, eotfile.ErrUnsupportedEncryption):
			fmt.Fprintf(w, "skip %s: %v\n", e.Name(), err)
			report.Skipped = append(report.Skipped, e.Name())
			continue
		case err != nil:
			fmt.Fprintf(w, "fail %s: %v\n", e.Name(), err)
			report.Failed = append(report.Failed, e.Name())
			continue
		}
		out := fontFileName(path, outDir, rec)
		if err := os.WriteFile(out, rec.FontData, 0o644); err != nil {
			fmt.Fprintf(w, "fail %s: %v\n", e.Name(), err)
			report.Failed = append(report.Failed, e.Name())
			continue
		}
		tracer().Debugf("%s -> %s", path, out)
		report.Extracted = append(report.Extracted, e.Name())
	}
	return report, nil
}
