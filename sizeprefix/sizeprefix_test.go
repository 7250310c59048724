package sizeprefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beve-org/beve/source"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"zero, 1-byte width", []byte{0x00}, 0},
		{"size 2, 1-byte width", []byte{0x08}, 2},
		{"size 10, 1-byte width", []byte{0b0010_1000}, 10},
		{"size 1, 2-byte width", []byte{0b0000_0101, 0x00}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := source.NewBytes(tt.data)
			got, err := Read(src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_consumesExactWidth(t *testing.T) {
	// wi=2 selects 4-byte width; value 0x0000000A >> 2 == 2.
	src := source.NewBytes([]byte{0x0A, 0x00, 0x00, 0x00, 0xFF})
	n, err := Read(src)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
	assert.Equal(t, int64(4), src.Position())
}

func TestRead_truncated(t *testing.T) {
	src := source.NewBytes([]byte{0x0A, 0x00})
	_, err := Read(src)
	require.Error(t, err)
}
