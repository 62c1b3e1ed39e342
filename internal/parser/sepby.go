// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type sepByState uint8

const (
	sepByStateSeparator sepByState = iota
	sepByStateElement
)

type sepBy[S input.Source, O, X any] struct {
	element   Parser[S, O]
	separator Parser[S, X]
}

// SepBy parses one or more elements with a separator between each pair.
//
// The list ends as soon as a separator fails; the remainder is then the input
// before that separator. When a separator matches but the element after it
// fails, the separator is trailing only when the element failed without
// moving past it and every leaf of its error is structural. The separator is
// then left unconsumed and the list so far is returned. Any other failure,
// including a NumberOverflow or InvalidFloat from an element that rewinds
// after reading its text, is a malformed element and fails the whole list
// rather than silently truncating it.
func SepBy[S input.Source, O, X any](element Parser[S, O], separator Parser[S, X]) Parser[S, []O] {
	return &sepBy[S, O, X]{element: element, separator: separator}
}

func (self *sepBy[S, O, X]) Parse(in input.Input[S]) (input.Input[S], []O, *exc.ParseError) {
	cursor, first, err := self.element.Parse(in)
	if err != nil {
		return cursor, nil, err
	}
	out := []O{first}
	beforeSeparator := cursor
	state := sepByStateSeparator
	for {
		switch state {
		case sepByStateSeparator:
			rest, _, err := self.separator.Parse(cursor)
			if err != nil {
				return cursor, out, nil
			}
			beforeSeparator = cursor
			cursor = rest
			state = sepByStateElement
		case sepByStateElement:
			rest, v, err := self.element.Parse(cursor)
			if err != nil {
				if rest.Index == cursor.Index && err.Set.Structural() {
					return beforeSeparator, out, nil
				}
				return rest, nil, err
			}
			out = append(out, v)
			cursor = rest
			state = sepByStateSeparator
		}
	}
}
