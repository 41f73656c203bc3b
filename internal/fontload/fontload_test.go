package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/eot/eotfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseSFNT(t *testing.T) {
	f, err := ParseSFNT(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", f.Fontname)
	assert.NotNil(t, f.SFNT)

	_, err = ParseSFNT([]byte("not a font"))
	assert.Error(t, err)
}

func TestLoadEOTPassesDecodeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.eot")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))
	_, err := LoadEOT(path)
	assert.ErrorIs(t, err, eotfile.ErrTruncatedInput)

	_, err = LoadEOT(filepath.Join(t.TempDir(), "missing.eot"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
