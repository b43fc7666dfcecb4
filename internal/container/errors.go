package container

import "errors"

// Sentinel errors returned by the parsing functions in this package, kept
// narrow and package-scoped the way a chunk parser's own Err* vars are: the
// root package maps these onto its own public error kinds at the API
// boundary rather than exporting them directly.
var (
	ErrBadSignature    = errors.New("container: missing GIF87a/GIF89a signature")
	ErrHeaderTooShort  = errors.New("container: buffer too small to hold a logical screen descriptor")
	ErrUnexpectedBlock = errors.New("container: unrecognized top-level block introducer")
	ErrTruncated       = errors.New("container: buffer ends before a fixed-size field is complete")
	ErrMalformed       = errors.New("container: a length-prefixed field overruns the buffer")
)
