// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package parser defines the Parser contract and the combinators that compose
// parsers into grammars.
//
// A grammar is a value: a small tree of combinator nodes built once and then
// invoked any number of times. Invoking the root recursively invokes its
// children directly against the input; there is no token stream. No parser
// mutates itself during a parse, so one tree may be shared by concurrent
// callers.
//
// Every Parse call returns the remaining input, the output, and a
// *exc.ParseError that is nil on success. On failure the returned input is
// either the entry input (the attempt backtracked) or the input at which the
// failure was detected; each combinator documents which.
package parser

import (
	"unicode/utf8"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type Parser[S input.Source, O any] interface {
	Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError)
}

// Func is an adaptor for plain functions that makes them compatible with the
// Parser interface.
type Func[S input.Source, O any] func(in input.Input[S]) (input.Input[S], O, *exc.ParseError)

func (f Func[S, O]) Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError) {
	return f(in)
}

// Apply runs p against data from offset zero.
func Apply[S input.Source, O any](p Parser[S, O], data S) (input.Input[S], O, *exc.ParseError) {
	return p.Parse(input.New(data))
}

// Complete runs p against data and requires that nothing is left over.
//
// The error is returned as the concrete type; callers that store it in an
// error variable must compare against nil before doing so.
func Complete[S input.Source, O any](p Parser[S, O], data S) (O, *exc.ParseError) {
	_, out, err := Apply(ThenConsume(p, End[S]()), data)
	return out, err
}

// End succeeds without consuming anything when the input is exhausted.
func End[S input.Source]() Parser[S, struct{}] {
	return Func[S, struct{}](func(in input.Input[S]) (input.Input[S], struct{}, *exc.ParseError) {
		if in.Empty() {
			return in, struct{}{}, nil
		}
		return in, struct{}{}, exc.NewParseError(in.Index, exc.ExpectedEnd(firstRune(in.Data)))
	})
}

func firstRune[S input.Source](data S) rune {
	n := min(len(data), utf8.UTFMax)
	r, _ := utf8.DecodeRuneInString(string(data[:n]))
	return r
}
