// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type flatten[S input.Source, O any] struct {
	p Parser[S, Parser[S, O]]
}

// Flatten runs p and then immediately runs the parser p produced against the
// remainder. Errors from either step pass through untouched.
func Flatten[S input.Source, O any](p Parser[S, Parser[S, O]]) Parser[S, O] {
	return &flatten[S, O]{p: p}
}

func (self *flatten[S, O]) Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError) {
	rest, next, err := self.p.Parse(in)
	if err != nil {
		var zero O
		return rest, zero, err
	}
	return next.Parse(rest)
}

// FlatMap chooses the next parser from the output of p. This is how a
// grammar depends on data it has already seen, e.g. picking a digit parser
// based on whether a sign was present.
func FlatMap[S input.Source, A, B any](p Parser[S, A], next func(A) Parser[S, B]) Parser[S, B] {
	return Flatten(Map(p, next))
}
