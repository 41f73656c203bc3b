package eotfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionIsKnown(t *testing.T) {
	assert.True(t, Version1.IsKnown())
	assert.True(t, Version21.IsKnown())
	assert.True(t, Version22.IsKnown())
	assert.False(t, Version(0x00020000).IsKnown())
	assert.Equal(t, "0x00020001", Version21.String())
}

func TestProcessingFlagsString(t *testing.T) {
	assert.Equal(t, "none", ProcessingFlags(0).String())
	assert.Equal(t, "Subset|TTCompressed", (FlagSubset | FlagTTCompressed).String())
	assert.Equal(t, "WebObject|XOREncryptData", (FlagWebObject | FlagXOREncryptData).String())
	assert.Equal(t, "Subset|0x00000100", ProcessingFlags(0x101).String())
	assert.True(t, (FlagEmbedEUDC | FlagSubset).Has(FlagEmbedEUDC))
	assert.False(t, FlagSubset.Has(FlagTTCompressed))
}

func TestEmbeddingFlagsString(t *testing.T) {
	assert.Equal(t, "Installable", EmbeddingInstallable.String())
	assert.Equal(t, "RestrictedLicense", EmbeddingRestrictedLicense.String())
	assert.Equal(t, "Editable|NoSubsetting", (EmbeddingEditable | EmbeddingNoSubsetting).String())
	assert.Equal(t, "PreviewPrint|0x0001", EmbeddingFlags(0x0005).String())
}

func TestOption(t *testing.T) {
	o := Some[uint32](7)
	v, ok := o.Unwrap()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), v)
	assert.True(t, o.IsSome())
	n := None[uint32]()
	assert.True(t, n.IsNone())
	assert.Equal(t, uint32(42), n.Or(42))
}
