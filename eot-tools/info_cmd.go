package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/eotquery"
	"github.com/thatisuday/commando"
)

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	path := strings.TrimSpace(args["eot"].Value)
	if path == "" {
		fatalf("EOT path is required")
	}
	rec := mustLoadEOT(path)
	fmt.Printf("Path: %s\n", path)
	printInfo(os.Stdout, rec)
	if mustFlagBool(flags["tables"], "tables") {
		tags, err := eotquery.TableTags(rec)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Tables (%d): %s\n", len(tags), strings.Join(tags, " "))
	}
	if mustFlagBool(flags["check"], "check") {
		if err := printCheck(os.Stdout, rec); err != nil {
			fatalf("%v", err)
		}
	}
}

func printInfo(w io.Writer, rec *eotfile.Record) {
	fmt.Fprintf(w, "Type: %s\n", eotquery.FontType(rec))
	names := eotquery.NameInfo(rec)
	labels := [][2]string{
		{"family", "Family"},
		{"subfamily", "Subfamily"},
		{"version", "Version name"},
		{"full", "Full name"},
	}
	for _, l := range labels {
		if v := names[l[0]]; v != "" {
			fmt.Fprintf(w, "%s: %s\n", l[1], v)
		}
	}
	for _, kv := range eotquery.HeaderInfo(rec) {
		fmt.Fprintf(w, "%s: %s\n", kv[0], kv[1])
	}
	fmt.Fprintf(w, "Embedding: %s\n", eotquery.EmbeddingInfo(rec))
	if len(rec.RootStrings) > 0 {
		fmt.Fprintf(w, "Root strings (%d):\n", len(rec.RootStrings))
		for _, r := range rec.RootStrings {
			fmt.Fprintf(w, "  %q\n", r)
		}
	}
}

func printCheck(w io.Writer, rec *eotfile.Record) error {
	mismatches, err := eotquery.CrossCheckNames(rec)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Name mismatches: %d\n", len(mismatches))
	for _, m := range mismatches {
		fmt.Fprintf(w, "  %s\n", m)
	}
	if match, ok := eotquery.CheckSumMatches(rec); ok {
		fmt.Fprintf(w, "CheckSumAdjustment matches font: %v\n", match)
	}
	return nil
}
