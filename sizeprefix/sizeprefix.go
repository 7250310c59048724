// Package sizeprefix decodes BEVE's self-describing variable-length size
// integer.
//
// The first byte's low two bits select a width in {1,2,4,8} bytes from the
// table at positions {0,1,2,3}; the same starting offset is then re-read as
// an unsigned little-endian integer of that width, and the decoded size is
// that integer right-shifted by 2 — the two width bits live in the low
// position of the full-width value, so the writer needs no external schema
// to agree on size encoding with the reader.
package sizeprefix

import (
	"github.com/beve-org/beve/endian"
	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/source"
)

// widthTable maps the two-bit width index to a byte width.
var widthTable = [4]int{1, 2, 4, 8}

// Read decodes one CompressedSize from src.
func Read(src source.Source) (uint64, error) {
	b, err := src.ReadByte()
	if err != nil {
		return 0, err
	}

	width := widthTable[b&0b11]

	if err := src.Rewind(1); err != nil {
		return 0, err
	}

	raw, err := src.ReadExact(width)
	if err != nil {
		return 0, err
	}

	eng := endian.Wire()

	var full uint64
	switch width {
	case 1:
		full = uint64(raw[0])
	case 2:
		full = uint64(eng.Uint16(raw))
	case 4:
		full = uint64(eng.Uint32(raw))
	case 8:
		full = eng.Uint64(raw)
	default:
		return 0, errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
	}

	return full >> 2, nil
}
