/*
Copyright 2016 Alex Baden

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package plyfile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the class of a FormatError. Codes are errors
// themselves, so errors.Is(err, ErrBadMagic) matches any FormatError
// carrying that code.
type ErrorCode string

func (c ErrorCode) Error() string { return string(c) }

const (
	// ErrBadMagic indicates the input does not begin with "ply".
	ErrBadMagic ErrorCode = "bad-magic"
	// ErrUnsupportedFormat indicates the second line is not "format ascii 1.0".
	ErrUnsupportedFormat ErrorCode = "unsupported-format"
	// ErrNoCurrentElement indicates a property line before any element line.
	ErrNoCurrentElement ErrorCode = "no-current-element"
	// ErrUnknownType indicates a type token outside the eight scalar types.
	ErrUnknownType ErrorCode = "unknown-type"
	// ErrMalformedLine indicates a header line with the wrong shape.
	ErrMalformedLine ErrorCode = "malformed-line"
	// ErrUnknownCommand indicates an unrecognized header keyword.
	ErrUnknownCommand ErrorCode = "unknown-command"
	// ErrBadElementLength indicates an element length that is not a
	// non-negative integer.
	ErrBadElementLength ErrorCode = "bad-element-length"
	// ErrBadScalar indicates a data token that does not parse as its type.
	ErrBadScalar ErrorCode = "bad-scalar"
	// ErrPropertyCountMismatch indicates a data line whose token count differs
	// from the element's property count.
	ErrPropertyCountMismatch ErrorCode = "property-count-mismatch"
	// ErrListLengthMismatch indicates a list row whose count disagrees with
	// the entries that follow it.
	ErrListLengthMismatch ErrorCode = "list-length-mismatch"
	// ErrTruncatedData indicates the input ended before an element was complete.
	ErrTruncatedData ErrorCode = "truncated-data"
	// ErrElementLengthMismatch indicates a decoded row count that differs from
	// the declared element length.
	ErrElementLengthMismatch ErrorCode = "element-length-mismatch"

	// ErrMissingEndHeader indicates the input ended inside the header.
	ErrMissingEndHeader ErrorCode = "missing-end-header"
	// ErrDuplicateElement indicates two elements share a name while
	// Options.StrictElements is set.
	ErrDuplicateElement ErrorCode = "duplicate-element"
	// ErrNoProperties indicates an element declared without any property.
	ErrNoProperties ErrorCode = "no-properties"
	// ErrMixedProperties indicates a list property mixed with other
	// properties on one element while Options.StrictProperties is set.
	ErrMixedProperties ErrorCode = "mixed-properties"
	// ErrTrailingData indicates non-blank lines after the last element while
	// Options.StrictTrailing is set.
	ErrTrailingData ErrorCode = "trailing-data"
)

// FormatError describes malformed PLY input. Line is 1-based over the whole
// input; Token holds the offending token when there is one.
type FormatError struct {
	Code    ErrorCode
	Line    int
	Token   string
	Message string
}

func newFormatError(code ErrorCode, line int, token, format string, args ...any) *FormatError {
	return &FormatError{
		Code:    code,
		Line:    line,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error formats the error as "[code] message at line N (token: t)".
func (e *FormatError) Error() string {
	if e == nil {
		return "plyfile: <nil>"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("plyfile: [%s] %s", e.Code, e.Message))
	if e.Line > 0 {
		b.WriteString(fmt.Sprintf(" at line %d", e.Line))
	}
	if e.Token != "" {
		b.WriteString(fmt.Sprintf(" (token: %q)", e.Token))
	}
	return b.String()
}

// Unwrap exposes the code so errors.Is can match against it.
func (e *FormatError) Unwrap() error { return e.Code }

// AsFormatError extracts a FormatError from err.
func AsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	if errors.As(err, &fe) && fe != nil {
		return fe, true
	}
	return nil, false
}
