package eotquery

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/eot/eotfile"
)

// HeadTableInfo is a view of the embedded font's table 'head', restricted to
// the fields relevant for EOT containers.
type HeadTableInfo struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
}

const headTableSize = 54

// HeadInfo decodes table 'head' of the embedded font from raw bytes.
// Returns (info, true) on success, or (zero, false) if the font cannot be
// read or the table is missing/too short.
func HeadInfo(rec *eotfile.Record) (HeadTableInfo, bool) {
	var info HeadTableInfo
	ld, err := loader(rec)
	if err != nil {
		tracer().Debugf("cannot read embedded font: %v", err)
		return info, false
	}
	b, err := ld.RawTable(opentype.MustNewTag("head"))
	if err != nil || len(b) < headTableSize {
		return info, false
	}
	info.MajorVersion = binary.BigEndian.Uint16(b[0:2])
	info.MinorVersion = binary.BigEndian.Uint16(b[2:4])
	info.FontRevision = binary.BigEndian.Uint32(b[4:8])
	info.CheckSumAdjustment = binary.BigEndian.Uint32(b[8:12])
	info.MagicNumber = binary.BigEndian.Uint32(b[12:16])
	info.Flags = binary.BigEndian.Uint16(b[16:18])
	info.UnitsPerEm = binary.BigEndian.Uint16(b[18:20])
	return info, true
}

// CheckSumMatches reports whether the container's CheckSumAdjustment equals
// the one in the embedded font's 'head' table. The second return value is
// false if table 'head' cannot be read.
func CheckSumMatches(rec *eotfile.Record) (bool, bool) {
	h, ok := HeadInfo(rec)
	if !ok {
		return false, false
	}
	return h.CheckSumAdjustment == rec.CheckSumAdjustment, true
}

// TableTags lists the table tags of the embedded font, in directory order.
func TableTags(rec *eotfile.Record) ([]string, error) {
	ld, err := loader(rec)
	if err != nil {
		return nil, err
	}
	tags := ld.Tables()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return names, nil
}

func loader(rec *eotfile.Record) (*opentype.Loader, error) {
	if rec == nil {
		return nil, fmt.Errorf("no EOT record")
	}
	ld, err := opentype.NewLoader(bytes.NewReader(rec.FontData))
	if err != nil {
		return nil, fmt.Errorf("cannot read embedded font: %w", err)
	}
	return ld, nil
}
