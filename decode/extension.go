package decode

import (
	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/numeric"
	"github.com/beve-org/beve/sizeprefix"
	"github.com/beve-org/beve/value"
)

const (
	extVariant = 1
	extMatrix  = 2
	extComplex = 3
)

// readExtension handles type=6: sub-dispatch on the 5-bit extension code
// drawn from bits 7:3 of the header byte.
func (r *Reader) readExtension(h header) (value.Value, error) {
	switch h.extensionCode() {
	case extVariant:
		return r.readVariant()
	case extMatrix:
		return r.readMatrix()
	case extComplex:
		return r.readComplex()
	default:
		return value.Value{}, errs.At(r.src.Position(), errs.ErrUnsupportedExtension)
	}
}

// readVariant reads and discards a CompressedSize variant tag (retained
// only for writer round-tripping), then recursively reads the wrapped
// Value. The variant's declared index is not exposed in this Value model.
func (r *Reader) readVariant() (value.Value, error) {
	if _, err := sizeprefix.Read(r.src); err != nil {
		return value.Value{}, err
	}

	return r.ReadValue()
}

// readMatrix reads one layout byte, then (column-major only) the extents
// and numeric payload.
func (r *Reader) readMatrix() (value.Value, error) {
	layoutByte, err := r.src.ReadByte()
	if err != nil {
		return value.Value{}, err
	}

	if layoutByte&1 == 0 {
		return value.Value{}, errs.At(r.src.Position(), errs.ErrUnsupportedMatrixLayout)
	}

	extents, err := r.ReadValue()
	if err != nil {
		return value.Value{}, err
	}

	rows, cols, err := matrixExtents(extents)
	if err != nil {
		return value.Value{}, errs.At(r.src.Position(), err)
	}

	data, err := r.ReadValue()
	if err != nil {
		return value.Value{}, err
	}

	if data.Kind != value.KindTypedArray {
		return value.Value{}, errs.At(r.src.Position(), errs.ErrMatrixShapeMismatch)
	}

	if data.TypedArray.Len() != rows*cols {
		return value.Value{}, errs.At(r.src.Position(), errs.ErrMatrixShapeMismatch)
	}

	return value.Value{
		Kind: value.KindMatrix,
		Matrix: value.Matrix{
			Rows:        rows,
			Cols:        cols,
			ColumnMajor: true,
			Data:        data.TypedArray,
		},
	}, nil
}

// matrixExtents validates that extents is a 2-element integer TypedArray
// and returns (rows, cols). A float or wrong-length extents value is
// rejected rather than trusted.
func matrixExtents(extents value.Value) (int, int, error) {
	if extents.Kind != value.KindTypedArray {
		return 0, 0, errs.ErrMatrixShapeMismatch
	}

	buf := extents.TypedArray
	if buf.Kind == numeric.KindFloat || buf.Len() != 2 {
		return 0, 0, errs.ErrMatrixShapeMismatch
	}

	vals := make([]int, 2)
	for i := 0; i < 2; i++ {
		switch buf.Kind {
		case numeric.KindSigned:
			vals[i] = int(intAt(buf, i))
		case numeric.KindUnsigned:
			vals[i] = int(uintAt(buf, i))
		}
	}

	return vals[0], vals[1], nil
}

func intAt(b numeric.Buffer, i int) int64 {
	switch {
	case b.Int8 != nil:
		return int64(b.Int8[i])
	case b.Int16 != nil:
		return int64(b.Int16[i])
	case b.Int32 != nil:
		return int64(b.Int32[i])
	default:
		return b.Int64[i]
	}
}

func uintAt(b numeric.Buffer, i int) uint64 {
	switch {
	case b.Uint8 != nil:
		return uint64(b.Uint8[i])
	case b.Uint16 != nil:
		return uint64(b.Uint16[i])
	case b.Uint32 != nil:
		return uint64(b.Uint32[i])
	default:
		return b.Uint64[i]
	}
}

// readComplex reads a header byte with the same bit layout as a Number
// header and dispatches on its type field: 0 = scalar complex, 1 = complex
// array.
func (r *Reader) readComplex() (value.Value, error) {
	b, err := r.src.ReadByte()
	if err != nil {
		return value.Value{}, err
	}

	ch := parseHeader(b)

	kind, err := numericKind(ch.sub)
	if err != nil {
		return value.Value{}, errs.At(r.src.Position(), err)
	}

	switch ch.typ {
	case 0:
		return r.readComplexScalar(ch, kind)
	case 1:
		return r.readComplexArray(ch, kind)
	default:
		return value.Value{}, errs.At(r.src.Position(), errs.ErrUnsupportedComplexType)
	}
}

func (r *Reader) readComplexScalar(ch header, kind numeric.Kind) (value.Value, error) {
	buf, err := numeric.Read(r.src, r.eng, kind, ch.width(), 2)
	if err != nil {
		return value.Value{}, err
	}

	real, imag := componentsAt(buf, kind, 0, 1)

	return value.Value{
		Kind:    value.KindComplex,
		Complex: value.Complex{Real: real, Imag: imag, Width: ch.width()},
	}, nil
}

func (r *Reader) readComplexArray(ch header, kind numeric.Kind) (value.Value, error) {
	if kind != numeric.KindFloat {
		return value.Value{}, errs.At(r.src.Position(), errs.ErrUnsupportedComplexInteger)
	}

	n, err := sizeprefix.Read(r.src)
	if err != nil {
		return value.Value{}, err
	}

	buf, err := numeric.Read(r.src, r.eng, kind, ch.width(), int(2*n))
	if err != nil {
		return value.Value{}, err
	}

	reals := make([]float64, n)
	imags := make([]float64, n)

	for i := uint64(0); i < n; i++ {
		re, im := componentsAt(buf, kind, int(2*i), int(2*i+1))
		reals[i] = re
		imags[i] = im
	}

	return value.Value{
		Kind: value.KindComplexArray,
		ComplexArray: value.ComplexArray{
			Real:  reals,
			Imag:  imags,
			Width: ch.width(),
		},
	}, nil
}

// componentsAt extracts the real and imaginary float64 components at
// indices i and j of buf, converting from whatever concrete numeric slice
// is populated.
func componentsAt(buf numeric.Buffer, kind numeric.Kind, i, j int) (float64, float64) {
	get := func(idx int) float64 {
		switch kind {
		case numeric.KindFloat:
			if buf.Float32 != nil {
				return float64(buf.Float32[idx])
			}

			return buf.Float64[idx]
		case numeric.KindSigned:
			return float64(intAt(buf, idx))
		default:
			return float64(uintAt(buf, idx))
		}
	}

	return get(i), get(j)
}
