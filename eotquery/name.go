package eotquery

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/eot/eotfile"
	"golang.org/x/image/font/sfnt"
)

// nameFields pairs the container's name fields with their 'name' table IDs.
var nameFields = []struct {
	key   string
	id    sfnt.NameID
	value func(*eotfile.Record) string
}{
	{"family", sfnt.NameIDFamily, func(r *eotfile.Record) string { return r.FamilyName }},
	{"subfamily", sfnt.NameIDSubfamily, func(r *eotfile.Record) string { return r.StyleName }},
	{"version", sfnt.NameIDVersion, func(r *eotfile.Record) string { return r.VersionName }},
	{"full", sfnt.NameIDFull, func(r *eotfile.Record) string { return r.FullName }},
}

// NameInfo returns the container's name fields, keyed by "family",
// "subfamily", "version" and "full". Empty names are omitted.
func NameInfo(rec *eotfile.Record) map[string]string {
	info := make(map[string]string, len(nameFields))
	if rec == nil {
		return info
	}
	for _, nf := range nameFields {
		if v := nf.value(rec); v != "" {
			info[nf.key] = v
		}
	}
	return info
}

// NamesRange yields `(nameID, value)` pairs for the names an EOT header
// copies, as found in the embedded font's 'name' table.
// Names missing from the font are skipped.
func NamesRange(f *sfnt.Font) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		if f == nil {
			return
		}
		var buf sfnt.Buffer
		for _, nf := range nameFields {
			s, err := f.Name(&buf, nf.id)
			if err != nil || s == "" {
				continue
			}
			if !yield(nf.id, s) {
				return
			}
		}
	}
}

// NameMismatch reports a name which differs between the EOT header and the
// embedded font.
type NameMismatch struct {
	Key         string // "family", "subfamily", "version" or "full"
	InContainer string
	InFont      string // empty if the font lacks the name
}

func (m NameMismatch) String() string {
	return fmt.Sprintf("%s: container has %q, font has %q", m.Key, m.InContainer, m.InFont)
}

// CrossCheckNames compares the container's name fields with the 'name'
// table of the embedded font. It returns an error if the font data cannot
// be parsed.
func CrossCheckNames(rec *eotfile.Record) ([]NameMismatch, error) {
	if rec == nil {
		return nil, errors.New("no EOT record")
	}
	f, err := sfnt.Parse(rec.FontData)
	if err != nil {
		return nil, fmt.Errorf("cannot parse embedded font: %w", err)
	}
	inFont := make(map[sfnt.NameID]string)
	for id, s := range NamesRange(f) {
		inFont[id] = s
	}
	var mismatches []NameMismatch
	for _, nf := range nameFields {
		if c := nf.value(rec); c != inFont[nf.id] {
			tracer().Debugf("name mismatch for %s: %q vs %q", nf.key, c, inFont[nf.id])
			mismatches = append(mismatches, NameMismatch{
				Key:         nf.key,
				InContainer: c,
				InFont:      inFont[nf.id],
			})
		}
	}
	return mismatches, nil
}
