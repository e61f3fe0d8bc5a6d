// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"

	"github.com/steamkit/enums/internal/idl"
)

type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

// Location identifies where an exception originated. URI is a file path for
// definition errors and a family name for registry lookups. Line and Column
// are zero when there is no position within the source.
type Location struct {
	idl.Location
	URI string
}

func (l Location) String() string {
	if l.Line == 0 {
		return l.URI
	}
	return fmt.Sprintf("%s:%d:%d", l.URI, l.Line, l.Column)
}

type exc struct {
	code     string
	message  string
	location Location
}

func (e *exc) Error() string {
	if e.location.URI == "" {
		return fmt.Sprintf("%s: %s", e.code, e.message)
	}
	return fmt.Sprintf("%s -- %s: %s", e.location, e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Location() Location {
	return e.location
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(location Location, code string, message string) Exception {
	return &exc{
		location: location,
		message:  message,
		code:     code,
	}
}

func Newf(location Location, code string, format string, args ...any) Exception {
	return New(location, code, fmt.Sprintf(format, args...))
}

func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(location, code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(location, code, err.Error()),
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}
