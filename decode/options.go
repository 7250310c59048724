package decode

import "github.com/go-kit/kit/log"

// defaultMaxDepth is the recursion depth cap before decoding fails with
// ErrNestingLimitExceeded.
const defaultMaxDepth = 1024

// Option configures a Reader, following the functional-options pattern.
type Option func(*Reader)

// WithMaxDepth overrides the nesting limit (default 1024).
func WithMaxDepth(n int) Option {
	return func(r *Reader) {
		r.maxDepth = n
	}
}

// WithLogger attaches a go-kit logger. One debug line is emitted per
// successful top-level ReadValue call (value kind, byte range); nothing
// else is logged, and failures are only returned as errors. The default
// logger is a no-op.
func WithLogger(l log.Logger) Option {
	return func(r *Reader) {
		r.logger = l
	}
}

// WithStringValidation controls whether decoded String/StringArray payloads
// are validated as UTF-8 (default true, per ErrInvalidUtf8). Disabling this
// trades correctness checking for throughput when the caller already
// trusts its input.
func WithStringValidation(enabled bool) Option {
	return func(r *Reader) {
		r.validateUTF8 = enabled
	}
}
