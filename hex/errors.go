package hex

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package that do not fall
// into one of the more specific classes below.
var Error = errs.Class("hex")

// Error classes.
var (
	FormatError         = errs.Class("hex format")
	NegativeValueError  = errs.Class("hex negative value")
	OverflowError       = errs.Class("hex overflow")
	DivisionByZeroError = errs.Class("hex division by zero")
)
