// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

// Both loops stop at the first failure of the child. A child that can
// succeed without consuming input never fails and so never stops; avoiding
// that is up to the grammar.

type many[S input.Source, O any] struct {
	p Parser[S, O]
}

// Many applies p until it fails and never fails itself. The terminating
// failure is discarded and the remainder is the input that attempt started
// from.
func Many[S input.Source, O any](p Parser[S, O]) Parser[S, []O] {
	return &many[S, O]{p: p}
}

func (self *many[S, O]) Parse(in input.Input[S]) (input.Input[S], []O, *exc.ParseError) {
	rest, out := repeat(self.p, in, []O{})
	return rest, out, nil
}

type many1[S input.Source, O any] struct {
	p Parser[S, O]
}

// Many1 is Many that requires one match. If the first attempt fails, that
// attempt's error and remainder are returned unchanged.
func Many1[S input.Source, O any](p Parser[S, O]) Parser[S, []O] {
	return &many1[S, O]{p: p}
}

func (self *many1[S, O]) Parse(in input.Input[S]) (input.Input[S], []O, *exc.ParseError) {
	rest, first, err := self.p.Parse(in)
	if err != nil {
		return rest, nil, err
	}
	rest, out := repeat(self.p, rest, []O{first})
	return rest, out, nil
}

func repeat[S input.Source, O any](p Parser[S, O], in input.Input[S], out []O) (input.Input[S], []O) {
	for {
		rest, v, err := p.Parse(in)
		if err != nil {
			return in, out
		}
		out = append(out, v)
		in = rest
	}
}
