// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
	"slices"
)

// ParseError pairs the leaves of a failed attempt with the absolute offset at
// which that attempt failed. A nil *ParseError means success throughout the
// parser package.
type ParseError struct {
	Set   Set
	Index int
}

var _ Exception = (*ParseError)(nil)

// NewParseError pins one or more leaves to index. Requiring the first leaf
// separately keeps the set from ever being empty.
func NewParseError(index int, leaf Leaf, more ...Leaf) *ParseError {
	set := make(Set, 0, len(more)+1)
	set = append(set, leaf)
	set = append(set, more...)
	return &ParseError{Set: set, Index: index}
}

// At returns a copy of the error pinned to index.
func (e *ParseError) At(index int) *ParseError {
	return &ParseError{Set: slices.Clone(e.Set), Index: index}
}

// Append merges two errors produced at the same branch point. The leaves are
// concatenated in order and the receiver's index is kept. When exactly one of
// the two holds only generic VerifyFailed markers, the other is returned
// unchanged so the concrete explanation survives.
func (e *ParseError) Append(other *ParseError) *ParseError {
	switch {
	case other == nil:
		return e
	case e == nil:
		return other
	case e.Generic() && !other.Generic():
		return other.At(other.Index)
	case other.Generic() && !e.Generic():
		return e.At(e.Index)
	}
	set := make(Set, 0, len(e.Set)+len(other.Set))
	set = append(set, e.Set...)
	set = append(set, other.Set...)
	return &ParseError{Set: set, Index: e.Index}
}

// MapLeaves rewrites every leaf with f, leaving the index untouched.
func (e *ParseError) MapLeaves(f func(Leaf) Leaf) *ParseError {
	set := make(Set, 0, len(e.Set))
	for _, l := range e.Set {
		set = append(set, f(l))
	}
	return &ParseError{Set: set, Index: e.Index}
}

func (e *ParseError) Generic() bool {
	return e.Set.Generic()
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d -- %s: %s", e.Index, e.Code(), e.Message())
}

// Code returns the code of the first concrete leaf, falling back to the
// generic marker's code.
func (e *ParseError) Code() string {
	for _, l := range e.Set {
		if !l.Generic() {
			return l.Code
		}
	}
	return CodeVerifyFailed
}

func (e *ParseError) Message() string {
	return e.Set.String()
}

func (e *ParseError) Location() Location {
	return Location{Offset: int64(e.Index)}
}

// Within converts the error into an Exception carrying a line and column
// relative to the document text the failed parse started from.
func (e *ParseError) Within(uri string, text string) Exception {
	return &excUnwrap{
		Exception: New(Locate(uri, text, e.Index), e.Code(), e.Message()),
		cause:     e,
	}
}
