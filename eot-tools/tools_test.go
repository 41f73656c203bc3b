package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/internal/eottest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func writeContainer(t *testing.T, dir, name string, c *eottest.Container) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), c.Bytes(), 0o644))
}

func TestExtractAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.tools")
	defer teardown()
	//
	in, out := t.TempDir(), t.TempDir()
	good := eottest.Valid(eottest.Version21)
	good.FontData = goregular.TTF
	writeContainer(t, in, "go.eot", good)
	mtx := eottest.Valid(eottest.Version22)
	mtx.Flags = uint32(eotfile.FlagTTCompressed)
	writeContainer(t, in, "mtx.eot", mtx)
	xor := eottest.Valid(eottest.Version22)
	xor.EUDCFlags = uint32(eotfile.FlagXOREncryptData)
	writeContainer(t, in, "xor.EOT", xor)
	broken := eottest.Valid(eottest.Version1)
	broken.Magic = 0
	writeContainer(t, in, "broken.eot", broken)
	require.NoError(t, os.WriteFile(filepath.Join(in, "readme.txt"), []byte("hi"), 0o644))

	var log bytes.Buffer
	report, err := extractAll(in, out, &log)
	require.NoError(t, err)
	assert.Equal(t, []string{"go.eot"}, report.Extracted)
	assert.Equal(t, []string{"mtx.eot", "xor.EOT"}, report.Skipped)
	assert.Equal(t, []string{"broken.eot"}, report.Failed)
	assert.Contains(t, log.String(), "skip mtx.eot")

	font, err := os.ReadFile(filepath.Join(out, "go.ttf"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(goregular.TTF, font))
}

func TestFontFileName(t *testing.T) {
	rec := &eotfile.Record{FontData: []byte("OTTO....")}
	assert.Equal(t, filepath.Join("out", "Font.otf"), fontFileName("in/Font.eot", "out", rec))
	rec.FontData = goregular.TTF
	assert.Equal(t, filepath.Join("in", "Font.ttf"), fontFileName("in/Font.eot", "in", rec))
}

func TestPrintInfo(t *testing.T) {
	c := eottest.Valid(eottest.Version22)
	c.FontData = goregular.TTF
	rec, err := eotfile.Decode(c.Bytes())
	require.NoError(t, err)
	var buf bytes.Buffer
	printInfo(&buf, rec)
	s := buf.String()
	assert.Contains(t, s, "Type: TrueType\n")
	assert.Contains(t, s, "Family: Maki\n")
	assert.Contains(t, s, "Version: 0x00020002\n")
	assert.Contains(t, s, `"https://example.org/"`)

	buf.Reset()
	require.NoError(t, printCheck(&buf, rec))
	assert.True(t, strings.HasPrefix(buf.String(), "Name mismatches: "))
}
