// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"unicode/utf8"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type text = input.Input[string]

func anyRune() Parser[string, rune] {
	return Func[string, rune](func(in text) (text, rune, *exc.ParseError) {
		if in.Empty() {
			return in, 0, exc.NewParseError(in.Index, exc.UnexpectedEnd())
		}
		r, size := utf8.DecodeRuneInString(in.Data)
		return in.Advance(size), r, nil
	})
}

func char(c rune) Parser[string, rune] {
	return Expect(anyRune(), func(r rune) bool {
		return r == c
	}, func(r rune) exc.Leaf {
		return exc.UnexpectedChar(c, r)
	})
}

func digit() Parser[string, rune] {
	return Expect(anyRune(), func(r rune) bool {
		return r >= '0' && r <= '9'
	}, func(r rune) exc.Leaf {
		return exc.UnexpectedCharType("decimal digit", r)
	})
}

func at(data string, index int) text {
	return text{Data: data, Index: index}
}
