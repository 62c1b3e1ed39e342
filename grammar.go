// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/numeric"
	"gopkg.microglot.org/combinator.go/internal/parser"
	"gopkg.microglot.org/combinator.go/internal/text"
)

const (
	grammarUint   = "uint"
	grammarInt    = "int"
	grammarFloat  = "float"
	grammarString = "string"
	grammarList   = "list"
)

var defaultKinds = map[string]string{
	grammarUint:  "u64",
	grammarInt:   "i64",
	grammarFloat: "f64",
}

type grammarOpts struct {
	Grammar    string
	Element    string
	Type       string
	Radix      int
	Open       string
	Close      string
	Separator  string
	AllowEmpty bool
}

// buildGrammar assembles the parser selected by the command line. Leading
// and trailing whitespace around a record is always accepted.
func buildGrammar(op grammarOpts, logger logrus.FieldLogger) (parser.Parser[string, any], error) {
	var g parser.Parser[string, any]
	var err error
	if op.Grammar == grammarList {
		g, err = buildList(op)
	} else {
		g, err = buildScalar(op.Grammar, op.Type, op.Radix)
	}
	if err != nil {
		return nil, err
	}
	return parser.Trace(op.Grammar, text.Spaced(g), logger), nil
}

func buildScalar(name string, kind string, radix int) (parser.Parser[string, any], error) {
	switch name {
	case grammarString:
		return parser.Map(text.StringLiteral(), func(s string) any {
			return s
		}), nil
	case grammarUint, grammarInt, grammarFloat:
	default:
		return nil, exc.New(exc.Location{}, exc.CodeUnknownGrammar, fmt.Sprintf("unknown grammar %q", name))
	}
	if kind == "" {
		kind = defaultKinds[name]
	}
	k, err := numeric.Lookup(kind)
	if err != nil {
		return nil, err
	}
	switch {
	case name == grammarFloat && !k.Float,
		name == grammarUint && k.Signedness != numeric.SignednessUnsigned,
		name == grammarInt && (k.Float || k.Signedness != numeric.SignednessSigned):
		return nil, exc.New(exc.Location{}, exc.CodeInvalidOption, fmt.Sprintf("numeric kind %s cannot be used with grammar %s", kind, name))
	}
	if radix < numeric.MinRadix || radix > numeric.MaxRadix {
		return nil, exc.New(exc.Location{}, exc.CodeInvalidOption, fmt.Sprintf("radix %d outside [%d, %d]", radix, numeric.MinRadix, numeric.MaxRadix))
	}
	return k.Parser(radix), nil
}

func buildList(op grammarOpts) (parser.Parser[string, any], error) {
	element, err := buildScalar(op.Element, op.Type, op.Radix)
	if err != nil {
		return nil, err
	}
	options := []text.ListOption{text.WithAllowEmpty(op.AllowEmpty)}
	for _, d := range []struct {
		flag   string
		value  string
		option func(rune) text.ListOption
	}{
		{flag: "open", value: op.Open, option: text.WithOpen},
		{flag: "close", value: op.Close, option: text.WithClose},
		{flag: "separator", value: op.Separator, option: text.WithSeparator},
	} {
		if d.value == "" {
			continue
		}
		if utf8.RuneCountInString(d.value) != 1 {
			return nil, exc.New(exc.Location{}, exc.CodeInvalidOption, fmt.Sprintf("--%s must be a single character, got %q", d.flag, d.value))
		}
		r, _ := utf8.DecodeRuneInString(d.value)
		options = append(options, d.option(r))
	}
	return parser.Map(text.List(element, options...), func(v []any) any {
		return v
	}), nil
}
