// Package beve decodes BEVE (Binary Extensible Value Encoding) documents —
// a self-describing binary interchange format extending JSON's expressive
// power with fixed-width numeric types, homogeneous typed arrays,
// column-major matrices, and complex numbers — into an in-memory value.Value
// tree.
//
// This package is a thin convenience wrapper around decode.Reader, in the
// style of a top-level package re-exporting the lower-level API's most
// common entry points.
//
// Basic usage:
//
//	v, err := beve.DecodeFile("document.beve")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v.Kind)
package beve

import (
	"io"
	"os"

	"github.com/beve-org/beve/decode"
	"github.com/beve-org/beve/source"
	"github.com/beve-org/beve/value"
)

// Decode consumes one top-level Value from r.
//
// The stream may contain trailing bytes after the top-level Value; Decode
// neither reads nor validates them.
func Decode(r io.Reader, opts ...decode.Option) (value.Value, error) {
	return decode.New(source.NewReader(r), opts...).ReadValue()
}

// DecodeBytes consumes one top-level Value from b without copying it.
func DecodeBytes(b []byte, opts ...decode.Option) (value.Value, error) {
	return decode.New(source.NewBytes(b), opts...).ReadValue()
}

// DecodeFile opens path and decodes one top-level Value from it.
func DecodeFile(path string, opts ...decode.Option) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, err
	}

	return DecodeBytes(data, opts...)
}
