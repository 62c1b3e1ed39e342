// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
	"gopkg.microglot.org/combinator.go/internal/optional"
)

type maybe[S input.Source, O any] struct {
	p Parser[S, O]
}

// Optional never fails. A failure of p is discarded and reported as an
// absent value at the original input.
func Optional[S input.Source, O any](p Parser[S, O]) Parser[S, optional.Optional[O]] {
	return &maybe[S, O]{p: p}
}

func (self *maybe[S, O]) Parse(in input.Input[S]) (input.Input[S], optional.Optional[O], *exc.ParseError) {
	rest, out, err := self.p.Parse(in)
	if err != nil {
		return in, optional.None[O](), nil
	}
	return rest, optional.Some(out), nil
}
