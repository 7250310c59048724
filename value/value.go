// Package value defines the tagged in-memory tree produced by the beve
// decoder.
//
// Value is realized as a flat struct with a Kind tag and payload fields
// gated by Kind, rather than an interface tree: this keeps decode
// allocation-light and lets tests assert on fields directly. Values are
// produced only by the decode package during a single top-to-bottom pass,
// are fully owned by the tree returned to the caller, and are immutable
// thereafter.
package value

import "github.com/beve-org/beve/numeric"

// Kind identifies which payload fields of a Value are populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindObject
	KindArray
	KindTypedArray
	KindStringArray
	KindMatrix
	KindComplex
	KindComplexArray
)

// String returns a human-readable name for k, for diagnostics and logging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUint:
		return "UInt"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindTypedArray:
		return "TypedArray"
	case KindStringArray:
		return "StringArray"
	case KindMatrix:
		return "Matrix"
	case KindComplex:
		return "Complex"
	case KindComplexArray:
		return "ComplexArray"
	default:
		return "Unknown"
	}
}

// Entry is one key/value pair of an Object, in the order it was decoded.
type Entry struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from UTF-8 keys to Value. Insertion order is
// preserved; the decoder does not enforce key uniqueness.
type Object struct {
	Entries []Entry
}

// Get returns the value for key and whether it was found. On duplicate
// keys, the first occurrence wins, matching the decoder's insertion order.
func (o Object) Get(key string) (Value, bool) {
	for _, e := range o.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return Value{}, false
}

// Complex is a pair (real, imag) of same-width reals.
type Complex struct {
	Real  float64
	Imag  float64
	Width int
}

// ComplexArray is a homogeneous sequence of complex values of declared
// width.
type ComplexArray struct {
	Real  []float64
	Imag  []float64
	Width int
}

// Matrix is a two-dimensional numeric buffer with extents (rows, cols) and
// a layout flag. Only column-major layout is produced by this decoder.
type Matrix struct {
	Rows        int
	Cols        int
	ColumnMajor bool
	Data        numeric.Buffer
}

// Value is the tagged sum produced by decoding one BEVE header byte plus
// its payload.
type Value struct {
	Kind Kind

	Bool bool

	// Int/Uint/Float share Width (in bytes: 1,2,4,8 for Int/Uint; 4,8 for
	// Float) so a 16-bit unsigned integer remains recorded as 16-bit,
	// never silently widened or narrowed.
	Int   int64
	Uint  uint64
	Float float64
	Width int

	Str string

	Object Object

	Array []Value

	TypedArray numeric.Buffer

	StringArray []string

	Matrix Matrix

	Complex Complex

	ComplexArray ComplexArray
}

// Null is the zero Value, with Kind KindNull.
var Null = Value{Kind: KindNull}
