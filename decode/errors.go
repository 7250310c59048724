package decode

import "github.com/beve-org/beve/errs"

// errUnsupportedNumericSub is returned when a Number header's sub field
// does not select one of {float, signed, unsigned}. Grouped with
// ErrUnsupportedNumericWidth since both mean "this numeric kind is not
// representable".
var errUnsupportedNumericSub = errs.ErrUnsupportedNumericWidth
