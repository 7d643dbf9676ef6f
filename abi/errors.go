package abi

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package that do not fall into
// one of the more specific classes below.
var Error = errs.Class("abi")

// Error classes.
var (
	EncodingOverflowError = errs.Class("abi encoding overflow")
	UnsupportedTypeError  = errs.Class("abi unsupported type")
	TruncatedDataError    = errs.Class("abi truncated data")
	UnimplementedError    = errs.Class("abi unimplemented")
	DepthError            = errs.Class("abi depth")
	ElementLimitError     = errs.Class("abi element limit")
)
