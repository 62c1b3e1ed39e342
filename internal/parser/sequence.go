// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

// Pair is the output of AndThen.
type Pair[A, B any] struct {
	First  A
	Second B
}

type andThen[S input.Source, A, B any] struct {
	first  Parser[S, A]
	second Parser[S, B]
}

// AndThen runs first and then second against the remainder. The sequence is
// not transactional: when second fails, whatever first consumed stays
// consumed and the failure is reported where second failed. Grammars that
// need to retry a span must do so with OrElse around the whole sequence.
func AndThen[S input.Source, A, B any](first Parser[S, A], second Parser[S, B]) Parser[S, Pair[A, B]] {
	return &andThen[S, A, B]{first: first, second: second}
}

func (self *andThen[S, A, B]) Parse(in input.Input[S]) (input.Input[S], Pair[A, B], *exc.ParseError) {
	var out Pair[A, B]
	rest, a, err := self.first.Parse(in)
	if err != nil {
		return rest, out, err
	}
	rest, b, err := self.second.Parse(rest)
	if err != nil {
		return rest, out, err
	}
	out.First = a
	out.Second = b
	return rest, out, nil
}

// ThenConsume sequences first and second and keeps only the first output.
func ThenConsume[S input.Source, A, B any](first Parser[S, A], second Parser[S, B]) Parser[S, A] {
	return Map(AndThen(first, second), func(p Pair[A, B]) A {
		return p.First
	})
}

// ThenParse sequences first and second and keeps only the second output.
func ThenParse[S input.Source, A, B any](first Parser[S, A], second Parser[S, B]) Parser[S, B] {
	return Map(AndThen(first, second), func(p Pair[A, B]) B {
		return p.Second
	})
}
