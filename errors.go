package restyle

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// Sentinel errors. Match with errors.Is.
var (
	ErrUnknownEncoding = errors.Base("unknown text encoding")
	ErrNoTarget        = errors.Base("no target file")
	ErrAmbiguousTarget = errors.Base("target pattern matches more than one file")
	ErrInvalidRule     = errors.Base("invalid rule")
)

// IOError reports a failed read or write of the target file.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodingError reports bytes that could not be decoded from, or text that
// could not be encoded to, the configured encoding.
type EncodingError struct {
	Encoding string
	Path     string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s is not valid %s: %v", e.Path, e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
