// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"unicode"

	"gopkg.microglot.org/combinator.go/internal/parser"
)

// Whitespace consumes zero or more unicode space runes.
func Whitespace() parser.Parser[string, struct{}] {
	return parser.Map(parser.Many(Satisfy("whitespace", unicode.IsSpace)), func([]rune) struct{} {
		return struct{}{}
	})
}

// Spaced runs p with optional whitespace on either side.
func Spaced[O any](p parser.Parser[string, O]) parser.Parser[string, O] {
	return parser.ThenConsume(parser.ThenParse(Whitespace(), p), Whitespace())
}

// StringLiteral parses a double quoted string and returns its unescaped
// content. Supported escapes are \" \\ \n \t and \r.
func StringLiteral() parser.Parser[string, string] {
	escape := parser.ThenParse(Char('\\'), parser.Choice(
		Char('"'),
		Char('\\'),
		replace('n', '\n'),
		replace('t', '\t'),
		replace('r', '\r'),
	))
	plain := Satisfy("string character", func(r rune) bool {
		return r != '"' && r != '\\'
	})
	content := parser.Map(parser.Many(parser.OrElse(plain, escape)), func(rs []rune) string {
		return string(rs)
	})
	return parser.ThenConsume(parser.ThenParse(Char('"'), content), Char('"'))
}

func replace(c rune, with rune) parser.Parser[string, rune] {
	return parser.Map(Char(c), func(rune) rune {
		return with
	})
}
