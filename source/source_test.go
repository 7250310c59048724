package source

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesSource_ReadExact(t *testing.T) {
	s := NewBytes([]byte{1, 2, 3, 4})

	b, err := s.ReadExact(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, int64(2), s.Position())
}

func TestBytesSource_ReadExact_truncated(t *testing.T) {
	s := NewBytes([]byte{1})
	_, err := s.ReadExact(2)
	require.Error(t, err)
}

func TestBytesSource_RewindAndReread(t *testing.T) {
	s := NewBytes([]byte{0xAB, 0x01})

	b, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)

	require.NoError(t, s.Rewind(1))
	assert.Equal(t, int64(0), s.Position())

	full, err := s.ReadExact(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0x01}, full)
}

func TestBytesSource_RewindPastStart(t *testing.T) {
	s := NewBytes([]byte{1, 2})
	require.Error(t, s.Rewind(1))
}

func TestReaderSource_ReadAndRewind(t *testing.T) {
	s := NewReader(bytes.NewReader([]byte{0x2C, 0x01, 0x02, 0x03}))

	b, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x2C), b)

	require.NoError(t, s.Rewind(1))
	assert.Equal(t, int64(0), s.Position())

	full, err := s.ReadExact(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2C, 0x01, 0x02, 0x03}, full)
}

func TestReaderSource_UnexpectedEOF(t *testing.T) {
	s := NewReader(bytes.NewReader([]byte{0x01}))
	_, err := s.ReadExact(4)
	require.Error(t, err)
}
