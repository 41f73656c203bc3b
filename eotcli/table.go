package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/eot/eotquery"
	"github.com/pterm/pterm"
)

func tablesOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	tags, err := eotquery.TableTags(intp.rec)
	if err != nil {
		return err, false
	}
	pterm.Printf("%s font with %d tables: %s\n", eotquery.FontType(intp.rec), len(tags),
		strings.Join(tags, " "))
	return nil, false
}

func checkOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	mismatches, err := eotquery.CrossCheckNames(intp.rec)
	if err != nil {
		return err, false
	}
	if len(mismatches) == 0 {
		pterm.Success.Println("names match the embedded font")
	}
	for _, m := range mismatches {
		pterm.Warning.Println(m.String())
	}
	if match, ok := eotquery.CheckSumMatches(intp.rec); ok && !match {
		pterm.Warning.Println("CheckSumAdjustment differs from the embedded font's 'head' table")
	} else if ok {
		pterm.Success.Println("CheckSumAdjustment matches the embedded font")
	}
	return nil, false
}

func extractOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkRecord(); err != nil {
		return
	}
	out, ok := op.hasArg()
	if !ok {
		return errors.New("usage: extract:<output file>"), false
	}
	if err = os.WriteFile(out, intp.rec.FontData, 0o644); err != nil {
		return fmt.Errorf("cannot write font data: %w", err), false
	}
	tracer().Infof("wrote %d bytes of font data to %s", len(intp.rec.FontData), out)
	return nil, false
}
