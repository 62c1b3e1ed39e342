// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type mapOutput[S input.Source, A, B any] struct {
	p      Parser[S, A]
	mapper func(A) B
}

// Map post-processes a successful output with a pure function.
func Map[S input.Source, A, B any](p Parser[S, A], mapper func(A) B) Parser[S, B] {
	return &mapOutput[S, A, B]{p: p, mapper: mapper}
}

func (self *mapOutput[S, A, B]) Parse(in input.Input[S]) (input.Input[S], B, *exc.ParseError) {
	rest, a, err := self.p.Parse(in)
	if err != nil {
		var zero B
		return rest, zero, err
	}
	return rest, self.mapper(a), nil
}

type mapError[S input.Source, O any] struct {
	p      Parser[S, O]
	mapper func(exc.Leaf) exc.Leaf
}

// MapError rewrites every leaf of a failure. Positions and the remainder are
// left alone. The usual use is translating the generic VerifyFailed marker
// into something a user can act on.
func MapError[S input.Source, O any](p Parser[S, O], mapper func(exc.Leaf) exc.Leaf) Parser[S, O] {
	return &mapError[S, O]{p: p, mapper: mapper}
}

func (self *mapError[S, O]) Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError) {
	rest, out, err := self.p.Parse(in)
	if err != nil {
		return rest, out, err.MapLeaves(self.mapper)
	}
	return rest, out, nil
}

type mapResult[S input.Source, A, B any] struct {
	p      Parser[S, A]
	mapper func(A) (B, *exc.Leaf)
}

// MapResult converts a successful output with a function that may reject it.
// A rejection fails at the input p started from, as if nothing had been
// consumed, so a caller can retry the same span with another rule.
func MapResult[S input.Source, A, B any](p Parser[S, A], mapper func(A) (B, *exc.Leaf)) Parser[S, B] {
	return &mapResult[S, A, B]{p: p, mapper: mapper}
}

func (self *mapResult[S, A, B]) Parse(in input.Input[S]) (input.Input[S], B, *exc.ParseError) {
	var zero B
	rest, a, err := self.p.Parse(in)
	if err != nil {
		return rest, zero, err
	}
	b, leaf := self.mapper(a)
	if leaf != nil {
		return in, zero, exc.NewParseError(in.Index, *leaf)
	}
	return rest, b, nil
}
