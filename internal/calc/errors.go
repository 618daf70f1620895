package calc

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("calc")

// ErrUnderflow is returned when an operator needs more operands than the
// stack holds.
var ErrUnderflow = Error.New("stack underflow")
