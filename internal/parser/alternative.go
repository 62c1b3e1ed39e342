// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type orElse[S input.Source, O any] struct {
	first  Parser[S, O]
	second Parser[S, O]
}

// OrElse tries first and, if it fails, tries second against the same input
// first started from. When both fail the error holds the leaves of first
// followed by the leaves of second, and the reported position and remainder
// are those of second.
func OrElse[S input.Source, O any](first Parser[S, O], second Parser[S, O]) Parser[S, O] {
	return &orElse[S, O]{first: first, second: second}
}

func (self *orElse[S, O]) Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError) {
	rest, out, err := self.first.Parse(in)
	if err == nil {
		return rest, out, nil
	}
	rest, out, err2 := self.second.Parse(in)
	if err2 == nil {
		return rest, out, nil
	}
	return rest, out, err.Append(err2).At(err2.Index)
}

// Choice chains OrElse left to right, so a total failure reports every
// alternative in the order given.
func Choice[S input.Source, O any](first Parser[S, O], rest ...Parser[S, O]) Parser[S, O] {
	p := first
	for _, next := range rest {
		p = OrElse(p, next)
	}
	return p
}
