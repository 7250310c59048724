package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beve-org/beve/endian"
	"github.com/beve-org/beve/source"
)

func TestRead_uint32(t *testing.T) {
	src := source.NewBytes([]byte{0x04, 0x03, 0x02, 0x01})
	buf, err := Read(src, endian.Wire(), KindUnsigned, 4, 1)
	require.NoError(t, err)
	require.NotNil(t, buf.Uint32)
	assert.Equal(t, uint32(0x01020304), buf.Uint32[0])
	assert.Equal(t, int64(4), src.Position())
}

func TestRead_float32Slice(t *testing.T) {
	// 1.0f and 2.0f little-endian.
	data := []byte{
		0x00, 0x00, 0x80, 0x3F,
		0x00, 0x00, 0x00, 0x40,
	}
	src := source.NewBytes(data)
	buf, err := Read(src, endian.Wire(), KindFloat, 4, 2)
	require.NoError(t, err)
	require.Len(t, buf.Float32, 2)
	assert.InDelta(t, 1.0, buf.Float32[0], 1e-9)
	assert.InDelta(t, 2.0, buf.Float32[1], 1e-9)
}

func TestRead_unsupportedWidth(t *testing.T) {
	src := source.NewBytes([]byte{0x00})
	_, err := Read(src, endian.Wire(), KindFloat, 1, 1)
	require.Error(t, err)
}

func TestRead_zeroCount(t *testing.T) {
	src := source.NewBytes(nil)
	buf, err := Read(src, endian.Wire(), KindUnsigned, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestRead_int8Signed(t *testing.T) {
	src := source.NewBytes([]byte{0xFF})
	buf, err := Read(src, endian.Wire(), KindSigned, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), buf.Int8[0])
}
