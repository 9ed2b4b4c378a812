package rifl

import (
	"errors"
	"fmt"
)

// Package-level errors for RIFL parsing and encoding.
var (
	// ErrBadMagic indicates the stream does not start with the "RIFL" magic.
	ErrBadMagic = errors.New("rifl: not a RIFL file")

	// ErrUnsupportedVersion indicates a RIFL version other than 1.
	ErrUnsupportedVersion = errors.New("rifl: unsupported version")

	// ErrTruncated indicates the stream ended inside a header, a length
	// prefix, or a buffer payload. A clean end of stream at a length-prefix
	// boundary is normal EOF, not ErrTruncated.
	ErrTruncated = errors.New("rifl: truncated stream")

	// ErrBufferTooLarge indicates a buffer length prefix exceeding the
	// maximum declared in the header.
	ErrBufferTooLarge = errors.New("rifl: buffer size exceeds declared maximum")

	// ErrBufferTooSmall indicates a header MaxBufferSize too small to hold
	// even one encoded pulse/duration pair.
	ErrBufferTooSmall = errors.New("rifl: max buffer size cannot hold a pair")
)

// FormatError is a fatal framing problem in a RIFL stream. It wraps one of
// the package sentinel errors and records the byte offset at which the
// problem was detected, so errors.Is can match the kind while the message
// pinpoints the position.
type FormatError struct {
	// Offset is the stream byte offset where parsing failed.
	Offset int64

	// Err is the underlying sentinel error.
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v (at byte %d)", e.Err, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }
