package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/eot/eotfile"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadEOT reads an EOT container from a file and decodes it.
// Decoding errors are returned unchanged, so errors.Is works on them.
func LoadEOT(eotfilename string) (*eotfile.Record, error) {
	bytez, err := os.ReadFile(eotfilename)
	if err != nil {
		return nil, err
	}
	return eotfile.Decode(bytez)
}

// ParseSFNT parses the font data extracted from a container as a TrueType or
// OpenType font.
func ParseSFNT(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, fmt.Errorf("embedded font data is not an SFNT font: %w", err)
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}
