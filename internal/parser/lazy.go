// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"sync"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type lazy[S input.Source, O any] struct {
	once  sync.Once
	build func() Parser[S, O]
	p     Parser[S, O]
}

// Lazy defers building a parser until its first use. Recursive grammars
// refer to themselves through Lazy. build runs at most once.
func Lazy[S input.Source, O any](build func() Parser[S, O]) Parser[S, O] {
	return &lazy[S, O]{build: build}
}

func (self *lazy[S, O]) Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError) {
	self.once.Do(func() {
		self.p = self.build()
	})
	return self.p.Parse(in)
}
