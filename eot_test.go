package eot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/eot/eotfile"
	"github.com/npillmayer/eot/internal/eottest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
)

func goRegularEOT(version uint32) []byte {
	c := eottest.Valid(version)
	c.Family, c.Style, c.Full = "Go", "Regular", "Go Regular"
	c.FontData = goregular.TTF
	return c.Bytes()
}

func TestParseEOT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot")
	defer teardown()
	//
	ef, err := ParseEOT(goRegularEOT(eottest.Version22))
	if err != nil {
		t.Fatalf("cannot parse EOT: %v", err)
	}
	if ef.Fontname != "Go Regular" {
		t.Errorf("expected embedded font to be 'Go Regular', is %q", ef.Fontname)
	}
	if ef.SFNT.NumGlyphs() == 0 {
		t.Errorf("expected embedded font to have glyphs")
	}
	var buf bytes.Buffer
	n, err := ef.WriteFontData(&buf)
	if err != nil || n != int64(len(goregular.TTF)) {
		t.Fatalf("WriteFontData wrote %d bytes, err = %v", n, err)
	}
	if !bytes.Equal(buf.Bytes(), goregular.TTF) {
		t.Errorf("extracted font data differs from original")
	}
}

func TestParseEOTRejectsNonSFNTPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot")
	defer teardown()
	//
	_, err := ParseEOT(eottest.Valid(eottest.Version1).Bytes())
	if err == nil {
		t.Fatalf("expected garbage payload to be rejected")
	}
	if eotfile.KindOf(err) != 0 {
		t.Errorf("expected a font parsing error, have container error %v", err)
	}
}

func TestLoadEOT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "go.eot")
	if err := os.WriteFile(path, goRegularEOT(eottest.Version21), 0o644); err != nil {
		t.Fatal(err)
	}
	ef, err := LoadEOT(path)
	if err != nil {
		t.Fatalf("cannot load EOT: %v", err)
	}
	if ef.Record.FamilyName != "Go" {
		t.Errorf("expected family name 'Go', is %q", ef.Record.FamilyName)
	}
	if !bytes.Equal(ef.FontData(), goregular.TTF) {
		t.Errorf("extracted font data differs from original")
	}

	c := eottest.Valid(eottest.Version21)
	c.Flags = uint32(eotfile.FlagTTCompressed)
	bad := filepath.Join(dir, "mtx.eot")
	if err := os.WriteFile(bad, c.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err = LoadEOT(bad); !errors.Is(err, eotfile.ErrUnsupportedCompression) {
		t.Errorf("expected compression to be refused, have %v", err)
	}
}
