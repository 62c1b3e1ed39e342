// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type verify[S input.Source, O any] struct {
	p      Parser[S, O]
	pred   func(O) bool
	onFail func(O) exc.Leaf
}

// Verify accepts the output of p only when pred holds. A rejected output
// fails at the original position with the generic VerifyFailed marker. Any
// failure, including one from p itself, hands back the original input.
func Verify[S input.Source, O any](p Parser[S, O], pred func(O) bool) Parser[S, O] {
	return &verify[S, O]{
		p:    p,
		pred: pred,
		onFail: func(O) exc.Leaf {
			return exc.VerifyFailed()
		},
	}
}

// Expect is Verify with a concrete failure. The leaf is built from the
// rejected output, so no generic marker ever needs mapping afterwards.
func Expect[S input.Source, O any](p Parser[S, O], pred func(O) bool, onFail func(O) exc.Leaf) Parser[S, O] {
	return &verify[S, O]{p: p, pred: pred, onFail: onFail}
}

func (self *verify[S, O]) Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError) {
	rest, out, err := self.p.Parse(in)
	if err != nil {
		return in, out, err
	}
	if !self.pred(out) {
		var zero O
		return in, zero, exc.NewParseError(in.Index, self.onFail(out))
	}
	return rest, out, nil
}
