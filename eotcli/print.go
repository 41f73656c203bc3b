package main

import (
	"fmt"

	"github.com/npillmayer/eot/eotquery"
	"github.com/pterm/pterm"
)

func headerOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	data := [][]string{
		{"Field", "Value"},
	}
	for _, kv := range eotquery.HeaderInfo(intp.rec) {
		data = append(data, []string{kv[0], kv[1]})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func namesOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	rec := intp.rec
	data := [][]string{
		{"Name", "Value"},
		{"FamilyName", rec.FamilyName},
		{"StyleName", rec.StyleName},
		{"VersionName", rec.VersionName},
		{"FullName", rec.FullName},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return
}

func rootsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	roots := intp.rec.RootStrings
	if len(roots) == 0 {
		pterm.Printf("EOT version %s has no root strings\n", intp.rec.Version)
		return
	}
	pterm.Printf("%d root string(s):\n", len(roots))
	for i, r := range roots {
		pterm.Printf("  [%d] %q\n", i, r)
	}
	if sum, ok := intp.rec.ComputeRootStringCheckSum(); ok {
		if stored, ok := intp.rec.RootStringCheckSum.Unwrap(); ok {
			pterm.Printf("checksum: stored 0x%08X, computed 0x%08X\n", stored, sum)
		}
	}
	return
}

func eudcOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	cp, ok := intp.rec.EUDCCodePage.Unwrap()
	if !ok {
		pterm.Printf("EOT version %s has no EUDC section\n", intp.rec.Version)
		return
	}
	pterm.Printf("EUDC code page: %d\n", cp)
	pterm.Printf("EUDC flags:     %s\n", intp.rec.EUDCFlags)
	pterm.Printf("EUDC font data: %d bytes\n", len(intp.rec.EUDCFontData))
	return
}

func flagsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	pterm.Println(eotquery.FlagInfo(intp.rec))
	pterm.Println(fmt.Sprintf("embedding: %s", eotquery.EmbeddingInfo(intp.rec)))
	return
}
