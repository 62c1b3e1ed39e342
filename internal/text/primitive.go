// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package text holds the string primitives every grammar is built from and
// the small text-level grammars composed from them.
package text

import (
	"strings"
	"unicode/utf8"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
	"gopkg.microglot.org/combinator.go/internal/parser"
)

// Input is a cursor over string data.
type Input = input.Input[string]

var anyChar = parser.Func[string, rune](func(in Input) (Input, rune, *exc.ParseError) {
	if in.Empty() {
		return in, 0, exc.NewParseError(in.Index, exc.UnexpectedEnd())
	}
	r, size := utf8.DecodeRuneInString(in.Data)
	return in.Advance(size), r, nil
})

// AnyChar matches the next rune. Invalid UTF-8 is returned as
// utf8.RuneError and consumes one byte.
func AnyChar() parser.Parser[string, rune] {
	return anyChar
}

// Char matches exactly c. A mismatch consumes nothing.
func Char(c rune) parser.Parser[string, rune] {
	return parser.Expect(AnyChar(), func(r rune) bool {
		return r == c
	}, func(r rune) exc.Leaf {
		return exc.UnexpectedChar(c, r)
	})
}

// Satisfy matches one rune for which pred holds. class names the expected
// kind of rune in the failure.
func Satisfy(class string, pred func(rune) bool) parser.Parser[string, rune] {
	return parser.Expect(AnyChar(), pred, func(r rune) exc.Leaf {
		return exc.UnexpectedCharType(class, r)
	})
}

type literal struct {
	expected string
}

// String matches the literal lit. A mismatch consumes nothing and reports
// the prefix of what was found with as many runes as lit.
func String(lit string) parser.Parser[string, string] {
	return &literal{expected: lit}
}

func (self *literal) Parse(in Input) (Input, string, *exc.ParseError) {
	if strings.HasPrefix(in.Data, self.expected) {
		return in.Advance(len(self.expected)), self.expected, nil
	}
	found := in.Data
	remaining := utf8.RuneCountInString(self.expected)
	for offset := range in.Data {
		if remaining == 0 {
			found = in.Data[:offset]
			break
		}
		remaining = remaining - 1
	}
	return in, "", exc.NewParseError(in.Index, exc.UnexpectedString(self.expected, found))
}
