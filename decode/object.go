package decode

import (
	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/sizeprefix"
	"github.com/beve-org/beve/value"
)

// readObject handles type=3. sub selects the key family: 0 = string keys
// (supported); 1 = signed integer keys; 2 = unsigned integer keys (both
// reserved, not implemented).
func (r *Reader) readObject(h header) (value.Value, error) {
	if h.sub != 0 {
		return value.Value{}, errs.At(r.src.Position(), errs.ErrUnsupportedObjectKey)
	}

	n, err := sizeprefix.Read(r.src)
	if err != nil {
		return value.Value{}, err
	}

	entries := make([]value.Entry, 0, n)

	for i := uint64(0); i < n; i++ {
		key, err := r.readRawString()
		if err != nil {
			return value.Value{}, err
		}

		key = r.keys.Intern(key)

		v, err := r.ReadValue()
		if err != nil {
			return value.Value{}, err
		}

		entries = append(entries, value.Entry{Key: key, Value: v})
	}

	return value.Value{Kind: value.KindObject, Object: value.Object{Entries: entries}}, nil
}
