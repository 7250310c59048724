package decode

import (
	"github.com/beve-org/beve/sizeprefix"
	"github.com/beve-org/beve/value"
)

// readArray handles type=5: an untyped, heterogeneous array.
func (r *Reader) readArray(h header) (value.Value, error) {
	n, err := sizeprefix.Read(r.src)
	if err != nil {
		return value.Value{}, err
	}

	elems := make([]value.Value, 0, n)

	for i := uint64(0); i < n; i++ {
		v, err := r.ReadValue()
		if err != nil {
			return value.Value{}, err
		}

		elems = append(elems, v)
	}

	return value.Value{Kind: value.KindArray, Array: elems}, nil
}
