package beve

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beve-org/beve/value"
)

func TestDecodeBytes_Null(t *testing.T) {
	v, err := DecodeBytes([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, value.KindNull, v.Kind)
}

func TestDecode_FromReader(t *testing.T) {
	v, err := Decode(bytes.NewReader([]byte{0x18}))
	require.NoError(t, err)
	assert.Equal(t, value.KindBool, v.Kind)
	assert.True(t, v.Bool)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.beve")
	require.NoError(t, os.WriteFile(path, []byte{0x02, 0x08, 0x68, 0x69}, 0o600))

	v, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, value.KindString, v.Kind)
	assert.Equal(t, "hi", v.Str)
}

func TestDecodeFile_MissingFile(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.beve"))
	require.Error(t, err)
}

func TestDecodeBytes_TrailingBytesIgnored(t *testing.T) {
	v, err := DecodeBytes([]byte{0x00, 0xFF, 0xFF, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, value.KindNull, v.Kind)
}
