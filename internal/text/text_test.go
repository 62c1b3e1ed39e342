// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/parser"
)

func at(data string, index int) Input {
	return Input{Data: data, Index: index}
}

func TestAnyChar(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected rune
		rest     Input
		err      *exc.ParseError
	}{
		{name: "ascii", input: "hi", expected: 'h', rest: at("i", 1)},
		{name: "multi byte", input: "é!", expected: 'é', rest: at("!", 2)},
		{name: "empty", input: "", rest: at("", 0), err: exc.NewParseError(0, exc.UnexpectedEnd())},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rest, out, err := parser.Apply(AnyChar(), testCase.input)
			require.Equal(t, testCase.err, err)
			require.Equal(t, testCase.expected, out)
			require.Equal(t, testCase.rest, rest)
		})
	}
}

func TestChar(t *testing.T) {
	t.Parallel()

	rest, out, err := parser.Apply(Char('h'), "hello")
	require.Nil(t, err)
	require.Equal(t, 'h', out)
	require.Equal(t, at("ello", 1), rest)

	rest, _, err = parser.Apply(Char('h'), "yellow")
	require.Equal(t, exc.NewParseError(0, exc.UnexpectedChar('h', 'y')), err)
	require.Equal(t, at("yellow", 0), rest)
}

func TestSatisfy(t *testing.T) {
	t.Parallel()

	upper := Satisfy("upper case letter", unicode.IsUpper)
	_, out, err := parser.Apply(upper, "Go")
	require.Nil(t, err)
	require.Equal(t, 'G', out)

	rest, _, err := parser.Apply(upper, "go")
	require.Equal(t, exc.NewParseError(0, exc.UnexpectedCharType("upper case letter", 'g')), err)
	require.Equal(t, at("go", 0), rest)
}

func TestString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		literal  string
		input    string
		expected string
		rest     Input
		err      *exc.ParseError
	}{
		{name: "prefix", literal: "let", input: "let x", expected: "let", rest: at(" x", 3)},
		{name: "whole", literal: "let", input: "let", expected: "let", rest: at("", 3)},
		{
			name:    "mismatch",
			literal: "let",
			input:   "lex x",
			rest:    at("lex x", 0),
			err:     exc.NewParseError(0, exc.UnexpectedString("let", "lex")),
		},
		{
			name:    "short input",
			literal: "let",
			input:   "le",
			rest:    at("le", 0),
			err:     exc.NewParseError(0, exc.UnexpectedString("let", "le")),
		},
		{
			name:    "multibyte found",
			literal: "ab",
			input:   "aé",
			rest:    at("aé", 0),
			err:     exc.NewParseError(0, exc.UnexpectedString("ab", "aé")),
		},
		{
			name:    "multibyte found with more input",
			literal: "ab",
			input:   "aéb",
			rest:    at("aéb", 0),
			err:     exc.NewParseError(0, exc.UnexpectedString("ab", "aé")),
		},
		{
			name:    "multibyte literal",
			literal: "é!",
			input:   "ab!",
			rest:    at("ab!", 0),
			err:     exc.NewParseError(0, exc.UnexpectedString("é!", "ab")),
		},
		{name: "empty literal", literal: "", input: "abc", expected: "", rest: at("abc", 0)},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rest, out, err := parser.Apply(String(testCase.literal), testCase.input)
			require.Equal(t, testCase.err, err)
			require.Equal(t, testCase.expected, out)
			require.Equal(t, testCase.rest, rest)
		})
	}
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	rest, _, err := parser.Apply(Whitespace(), " \t\n x")
	require.Nil(t, err)
	require.Equal(t, at("x", 4), rest)

	rest, _, err = parser.Apply(Whitespace(), "x")
	require.Nil(t, err)
	require.Equal(t, at("x", 0), rest)

	rest, out, err := parser.Apply(Spaced(Char('x')), "  x  y")
	require.Nil(t, err)
	require.Equal(t, 'x', out)
	require.Equal(t, at("y", 5), rest)
}

func TestStringLiteral(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
		rest     Input
		err      *exc.ParseError
	}{
		{
			name:     "escapes",
			input:    "\"hello\\n\\\"J\\\"  \\t this is with tabs 'rr\"",
			expected: "hello\n\"J\"  \t this is with tabs 'rr",
			rest:     at("", 40),
		},
		{name: "empty", input: `""`, expected: "", rest: at("", 2)},
		{name: "backslash", input: `"a\\b\r"`, expected: "a\\b\r", rest: at("", 8)},
		{name: "trailing input", input: `"a" b`, expected: "a", rest: at(" b", 3)},
		{
			name:  "missing opening quote",
			input: `abc"`,
			rest:  at(`abc"`, 0),
			err:   exc.NewParseError(0, exc.UnexpectedChar('"', 'a')),
		},
		{
			name:  "unterminated",
			input: `"abc`,
			rest:  at("", 4),
			err:   exc.NewParseError(4, exc.UnexpectedEnd()),
		},
		{
			name:  "unknown escape",
			input: `"a\qb"`,
			rest:  at(`\qb"`, 2),
			err:   exc.NewParseError(2, exc.UnexpectedChar('"', '\\')),
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rest, out, err := parser.Apply(StringLiteral(), testCase.input)
			require.Equal(t, testCase.err, err)
			require.Equal(t, testCase.expected, out)
			require.Equal(t, testCase.rest, rest)
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	letter := Satisfy("letter", unicode.IsLetter)

	testCases := []struct {
		name     string
		options  []ListOption
		input    string
		expected []rune
		rest     Input
		err      *exc.ParseError
	}{
		{
			name:     "defaults",
			input:    "[a, b ,c]",
			expected: []rune{'a', 'b', 'c'},
			rest:     at("", 9),
		},
		{
			name:     "padding",
			input:    "[ a ]tail",
			expected: []rune{'a'},
			rest:     at("tail", 5),
		},
		{
			name:     "custom delimiters",
			options:  []ListOption{WithOpen('('), WithClose(')'), WithSeparator(';')},
			input:    "(x;y)",
			expected: []rune{'x', 'y'},
			rest:     at("", 5),
		},
		{
			name:  "empty rejected by default",
			input: "[]",
			rest:  at("]", 1),
			err:   exc.NewParseError(1, exc.UnexpectedCharType("letter", ']')),
		},
		{
			name:     "empty allowed",
			options:  []ListOption{WithAllowEmpty(true)},
			input:    "[ ]",
			expected: []rune{},
			rest:     at("", 3),
		},
		{
			name:  "trailing separator left for the closing delimiter",
			input: "[a,]",
			rest:  at(",]", 2),
			err:   exc.NewParseError(2, exc.UnexpectedChar(']', ',')),
		},
		{
			name:  "padded trailing separator reads as a malformed element",
			input: "[a, ]",
			rest:  at("]", 4),
			err:   exc.NewParseError(4, exc.UnexpectedCharType("letter", ']')),
		},
		{
			name:  "missing close",
			input: "[a, b",
			rest:  at("", 5),
			err:   exc.NewParseError(5, exc.UnexpectedEnd()),
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rest, out, err := parser.Apply(List(letter, testCase.options...), testCase.input)
			require.Equal(t, testCase.err, err)
			require.Equal(t, testCase.expected, out)
			require.Equal(t, testCase.rest, rest)
		})
	}
}
