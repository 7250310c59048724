// Package numeric decodes runs of fixed-width BEVE numeric elements into
// typed Go buffers.
//
// Given a (kind, width, count) triple it reads width*count octets and
// returns a Buffer with exactly one of its typed slices populated. No
// byte-swap is applied on little-endian hosts; on big-endian hosts every
// element is assembled explicitly from its wire bytes via the endian engine,
// never by reinterpreting memory.
package numeric

import (
	"math"

	"github.com/beve-org/beve/endian"
	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/source"
)

// Kind selects the numeric family of a run of elements.
type Kind uint8

const (
	KindFloat Kind = iota
	KindSigned
	KindUnsigned
)

// Buffer holds one decoded numeric run. Exactly one slice field is
// populated, selected by Kind and Width.
type Buffer struct {
	Kind  Kind
	Width int

	Float32 []float32
	Float64 []float64

	Int8  []int8
	Int16 []int16
	Int32 []int32
	Int64 []int64

	Uint8  []uint8
	Uint16 []uint16
	Uint32 []uint32
	Uint64 []uint64
}

// Len returns the number of elements in the populated slice.
func (b Buffer) Len() int {
	switch {
	case b.Float32 != nil:
		return len(b.Float32)
	case b.Float64 != nil:
		return len(b.Float64)
	case b.Int8 != nil:
		return len(b.Int8)
	case b.Int16 != nil:
		return len(b.Int16)
	case b.Int32 != nil:
		return len(b.Int32)
	case b.Int64 != nil:
		return len(b.Int64)
	case b.Uint8 != nil:
		return len(b.Uint8)
	case b.Uint16 != nil:
		return len(b.Uint16)
	case b.Uint32 != nil:
		return len(b.Uint32)
	case b.Uint64 != nil:
		return len(b.Uint64)
	default:
		return 0
	}
}

// Read decodes count elements of the given kind and width (in bytes) from
// src, using eng for byte order assembly.
//
// Float width must be 4 or 8; signed/unsigned width must be one of
// {1,2,4,8}. Any other combination fails with ErrUnsupportedNumericWidth.
func Read(src source.Source, eng endian.EndianEngine, kind Kind, width int, count int) (Buffer, error) {
	buf := Buffer{Kind: kind, Width: width}

	if count == 0 {
		switch kind {
		case KindFloat:
			if width == 4 {
				buf.Float32 = []float32{}
			} else if width == 8 {
				buf.Float64 = []float64{}
			} else {
				return buf, errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
			}
		case KindSigned:
			if err := emptySigned(&buf, width, src); err != nil {
				return buf, err
			}
		case KindUnsigned:
			if err := emptyUnsigned(&buf, width, src); err != nil {
				return buf, err
			}
		}

		return buf, nil
	}

	if err := validateWidth(kind, width, src); err != nil {
		return buf, err
	}

	raw, err := src.ReadExact(width * count)
	if err != nil {
		return buf, err
	}

	switch kind {
	case KindFloat:
		switch width {
		case 4:
			vals := make([]float32, count)
			for i := range vals {
				vals[i] = math.Float32frombits(eng.Uint32(raw[i*4 : i*4+4]))
			}
			buf.Float32 = vals
		case 8:
			vals := make([]float64, count)
			for i := range vals {
				vals[i] = math.Float64frombits(eng.Uint64(raw[i*8 : i*8+8]))
			}
			buf.Float64 = vals
		default:
			return buf, errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
		}
	case KindSigned:
		switch width {
		case 1:
			vals := make([]int8, count)
			for i := range vals {
				vals[i] = int8(raw[i])
			}
			buf.Int8 = vals
		case 2:
			vals := make([]int16, count)
			for i := range vals {
				vals[i] = int16(eng.Uint16(raw[i*2 : i*2+2]))
			}
			buf.Int16 = vals
		case 4:
			vals := make([]int32, count)
			for i := range vals {
				vals[i] = int32(eng.Uint32(raw[i*4 : i*4+4]))
			}
			buf.Int32 = vals
		case 8:
			vals := make([]int64, count)
			for i := range vals {
				vals[i] = int64(eng.Uint64(raw[i*8 : i*8+8]))
			}
			buf.Int64 = vals
		default:
			return buf, errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
		}
	case KindUnsigned:
		switch width {
		case 1:
			vals := make([]uint8, count)
			copy(vals, raw)
			buf.Uint8 = vals
		case 2:
			vals := make([]uint16, count)
			for i := range vals {
				vals[i] = eng.Uint16(raw[i*2 : i*2+2])
			}
			buf.Uint16 = vals
		case 4:
			vals := make([]uint32, count)
			for i := range vals {
				vals[i] = eng.Uint32(raw[i*4 : i*4+4])
			}
			buf.Uint32 = vals
		case 8:
			vals := make([]uint64, count)
			for i := range vals {
				vals[i] = eng.Uint64(raw[i*8 : i*8+8])
			}
			buf.Uint64 = vals
		default:
			return buf, errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
		}
	}

	return buf, nil
}

func validateWidth(kind Kind, width int, src source.Source) error {
	switch kind {
	case KindFloat:
		if width != 4 && width != 8 {
			return errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
		}
	case KindSigned, KindUnsigned:
		if width != 1 && width != 2 && width != 4 && width != 8 {
			return errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
		}
	}

	return nil
}

func emptySigned(buf *Buffer, width int, src source.Source) error {
	switch width {
	case 1:
		buf.Int8 = []int8{}
	case 2:
		buf.Int16 = []int16{}
	case 4:
		buf.Int32 = []int32{}
	case 8:
		buf.Int64 = []int64{}
	default:
		return errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
	}

	return nil
}

func emptyUnsigned(buf *Buffer, width int, src source.Source) error {
	switch width {
	case 1:
		buf.Uint8 = []uint8{}
	case 2:
		buf.Uint16 = []uint16{}
	case 4:
		buf.Uint32 = []uint32{}
	case 8:
		buf.Uint64 = []uint64{}
	default:
		return errs.At(src.Position(), errs.ErrUnsupportedNumericWidth)
	}

	return nil
}
