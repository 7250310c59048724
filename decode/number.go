package decode

import (
	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/numeric"
	"github.com/beve-org/beve/value"
)

// readNumber handles type=1: a single Number. sub selects
// {float=0, signed=1, unsigned=2}; widx selects width.
func (r *Reader) readNumber(h header) (value.Value, error) {
	kind, err := numericKind(h.sub)
	if err != nil {
		return value.Value{}, errs.At(r.src.Position(), err)
	}

	buf, err := numeric.Read(r.src, r.eng, kind, h.width(), 1)
	if err != nil {
		return value.Value{}, err
	}

	switch kind {
	case numeric.KindFloat:
		f := firstFloat(buf)

		return value.Value{Kind: value.KindFloat, Float: f, Width: h.width()}, nil
	case numeric.KindSigned:
		i := firstInt(buf)

		return value.Value{Kind: value.KindInt, Int: i, Width: h.width()}, nil
	default:
		u := firstUint(buf)

		return value.Value{Kind: value.KindUint, Uint: u, Width: h.width()}, nil
	}
}

func numericKind(sub uint8) (numeric.Kind, error) {
	switch sub {
	case 0:
		return numeric.KindFloat, nil
	case 1:
		return numeric.KindSigned, nil
	case 2:
		return numeric.KindUnsigned, nil
	default:
		return 0, errUnsupportedNumericSub
	}
}

func firstFloat(b numeric.Buffer) float64 {
	if b.Float32 != nil {
		return float64(b.Float32[0])
	}

	return b.Float64[0]
}

func firstInt(b numeric.Buffer) int64 {
	switch {
	case b.Int8 != nil:
		return int64(b.Int8[0])
	case b.Int16 != nil:
		return int64(b.Int16[0])
	case b.Int32 != nil:
		return int64(b.Int32[0])
	default:
		return b.Int64[0]
	}
}

func firstUint(b numeric.Buffer) uint64 {
	switch {
	case b.Uint8 != nil:
		return uint64(b.Uint8[0])
	case b.Uint16 != nil:
		return uint64(b.Uint16[0])
	case b.Uint32 != nil:
		return uint64(b.Uint32[0])
	default:
		return b.Uint64[0]
	}
}
