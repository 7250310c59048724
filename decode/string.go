package decode

import (
	"unicode/utf8"

	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/sizeprefix"
	"github.com/beve-org/beve/value"
)

// readString handles type=2: a CompressedSize-prefixed UTF-8 string.
func (r *Reader) readString(h header) (value.Value, error) {
	s, err := r.readRawString()
	if err != nil {
		return value.Value{}, err
	}

	return value.Value{Kind: value.KindString, Str: s}, nil
}

// readRawString reads a CompressedSize length prefix followed by that many
// UTF-8 bytes. Shared by String values, Object keys, and StringArray
// elements.
func (r *Reader) readRawString() (string, error) {
	n, err := sizeprefix.Read(r.src)
	if err != nil {
		return "", err
	}

	if n == 0 {
		return "", nil
	}

	raw, err := r.src.ReadExact(int(n))
	if err != nil {
		return "", err
	}

	if r.validateUTF8 && !utf8.Valid(raw) {
		return "", errs.At(r.src.Position(), errs.ErrInvalidUtf8)
	}

	return string(raw), nil
}
