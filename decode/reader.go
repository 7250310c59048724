// Package decode implements the recursive BEVE value reader: the tag-driven
// binary parser that is the core of this module.
//
// A Reader consumes one header byte at a time, dispatches on its bit-fields,
// reads the payload (possibly re-entering itself for nested values), and
// returns a value.Value node. Decoding is single-threaded and synchronous:
// a Reader consumes one source.Source sequentially and is not reusable once
// ReadValue has returned.
package decode

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/beve-org/beve/endian"
	"github.com/beve-org/beve/errs"
	"github.com/beve-org/beve/internal/cache"
	"github.com/beve-org/beve/source"
	"github.com/beve-org/beve/value"
)

// Reader is the recursive core of the decoder.
//
// Note: Reader is NOT thread-safe. Each instance should be used by a single
// goroutine at a time.
//
// Note: Reader is NOT reusable. After the top-level ReadValue call returns,
// construct a new Reader for further decoding.
type Reader struct {
	src source.Source
	eng endian.EndianEngine
	ctx context.Context

	depth    int
	maxDepth int

	validateUTF8 bool
	logger       log.Logger

	keys *cache.KeyCache
}

// New creates a Reader over src with the given options applied.
func New(src source.Source, opts ...Option) *Reader {
	return NewWithContext(context.Background(), src, opts...)
}

// NewWithContext creates a Reader whose recursive descent checks ctx at
// every nested ReadValue call, aborting with ctx.Err() wrapped via %w if
// the context has been canceled. The Reader itself holds no resource beyond
// src; src's lifetime remains the caller's responsibility.
func NewWithContext(ctx context.Context, src source.Source, opts ...Option) *Reader {
	r := &Reader{
		src:          src,
		eng:          endian.Wire(),
		ctx:          ctx,
		maxDepth:     defaultMaxDepth,
		validateUTF8: true,
		logger:       log.NewNopLogger(),
		keys:         cache.NewKeyCache(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ReadValue reads one header byte and its payload, recursing into nested
// values as needed, and returns the decoded Value.
func (r *Reader) ReadValue() (value.Value, error) {
	if err := r.ctx.Err(); err != nil {
		return value.Value{}, fmt.Errorf("beve: decode canceled: %w", err)
	}

	r.depth++
	defer func() { r.depth-- }()

	if r.depth > r.maxDepth {
		return value.Value{}, errs.At(r.src.Position(), errs.ErrNestingLimitExceeded)
	}

	start := r.src.Position()

	b, err := r.src.ReadByte()
	if err != nil {
		return value.Value{}, err
	}

	h := parseHeader(b)

	v, err := r.dispatch(h)
	if err != nil {
		return v, err
	}

	if r.depth == 1 {
		level.Debug(r.logger).Log(
			"msg", "decoded value",
			"kind", v.Kind.String(),
			"start", start,
			"end", r.src.Position(),
		)
	}

	return v, nil
}

func (r *Reader) dispatch(h header) (value.Value, error) {
	switch h.typ {
	case typeNullBool:
		return r.readNullBool(h)
	case typeNumber:
		return r.readNumber(h)
	case typeString:
		return r.readString(h)
	case typeObject:
		return r.readObject(h)
	case typeTypedArray:
		return r.readTypedArray(h)
	case typeArray:
		return r.readArray(h)
	case typeExtension:
		return r.readExtension(h)
	default:
		return value.Value{}, errs.At(r.src.Position(), errs.ErrUnknownType)
	}
}

func (r *Reader) readNullBool(h header) (value.Value, error) {
	if h.raw&0b1000 == 0 {
		return value.Null, nil
	}

	b := h.raw&0b10000 != 0

	return value.Value{Kind: value.KindBool, Bool: b}, nil
}
