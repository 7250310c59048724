package decode

import (
	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/numeric"
	"github.com/beve-org/beve/sizeprefix"
	"github.com/beve-org/beve/value"
)

// readTypedArray handles type=4. sub selects element kind:
// {0 = float, 1 = signed, 2 = unsigned, 3 = bool-or-string}.
func (r *Reader) readTypedArray(h header) (value.Value, error) {
	if h.sub == 3 {
		if h.raw&0b100000 != 0 {
			return r.readStringArray()
		}

		return value.Value{}, errs.At(r.src.Position(), errs.ErrUnsupportedBoolArray)
	}

	kind, err := numericKind(h.sub)
	if err != nil {
		return value.Value{}, errs.At(r.src.Position(), err)
	}

	n, err := sizeprefix.Read(r.src)
	if err != nil {
		return value.Value{}, err
	}

	buf, err := numeric.Read(r.src, r.eng, kind, h.width(), int(n))
	if err != nil {
		return value.Value{}, err
	}

	return value.Value{Kind: value.KindTypedArray, TypedArray: buf}, nil
}

func (r *Reader) readStringArray() (value.Value, error) {
	n, err := sizeprefix.Read(r.src)
	if err != nil {
		return value.Value{}, err
	}

	strs := make([]string, 0, n)

	for i := uint64(0); i < n; i++ {
		s, err := r.readRawString()
		if err != nil {
			return value.Value{}, err
		}

		strs = append(strs, s)
	}

	return value.Value{Kind: value.KindStringArray, StringArray: strs}, nil
}
