// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
	"unicode/utf8"
)

type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

// Location identifies a point in a named document. Line and Column are
// 1-based and only populated when the document text was available; Offset is
// the 0-based byte offset.
type Location struct {
	URI    string
	Line   int32
	Column int32
	Offset int64
}

// Locate computes the line and column of a byte offset within text. Columns
// count runes, not bytes. Offsets past the end of text are clamped.
func Locate(uri string, text string, offset int) Location {
	if offset > len(text) {
		offset = len(text)
	}
	loc := Location{URI: uri, Line: 1, Column: 1, Offset: int64(offset)}
	for _, r := range text[:offset] {
		if r == '\n' {
			loc.Line = loc.Line + 1
			loc.Column = 1
			continue
		}
		loc.Column = loc.Column + 1
	}
	return loc
}

type exc struct {
	code     string
	message  string
	location Location
}

func (e *exc) Error() string {
	return fmt.Sprintf("%s:%d:%d -- %s: %s", e.location.URI, e.location.Line, e.location.Column, e.code, e.message)
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

func quoteRune(r rune) string {
	if r == utf8.RuneError {
		return "invalid UTF-8"
	}
	return fmt.Sprintf("%q", r)
}
