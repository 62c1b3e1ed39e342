// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseErrorAppend(t *testing.T) {
	t.Parallel()

	digit := UnexpectedCharType("decimal digit", 'x')
	minus := UnexpectedChar('-', 'x')

	testCases := []struct {
		name     string
		left     *ParseError
		right    *ParseError
		expected *ParseError
	}{
		{
			name:     "concatenates and keeps first index",
			left:     NewParseError(3, digit),
			right:    NewParseError(5, minus),
			expected: &ParseError{Set: Set{digit, minus}, Index: 3},
		},
		{
			name:     "concrete right wins over generic left",
			left:     NewParseError(3, VerifyFailed()),
			right:    NewParseError(5, minus),
			expected: &ParseError{Set: Set{minus}, Index: 5},
		},
		{
			name:     "concrete left wins over generic right",
			left:     NewParseError(3, digit),
			right:    NewParseError(3, VerifyFailed(), VerifyFailed()),
			expected: &ParseError{Set: Set{digit}, Index: 3},
		},
		{
			name:     "two generic markers are kept",
			left:     NewParseError(1, VerifyFailed()),
			right:    NewParseError(1, VerifyFailed()),
			expected: &ParseError{Set: Set{VerifyFailed(), VerifyFailed()}, Index: 1},
		},
		{
			name:     "nil right",
			left:     NewParseError(1, digit),
			expected: &ParseError{Set: Set{digit}, Index: 1},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			actual := testCase.left.Append(testCase.right)
			if diff := cmp.Diff(testCase.expected, actual); diff != "" {
				t.Errorf("Append() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrorAppendDoesNotAlias(t *testing.T) {
	t.Parallel()

	left := NewParseError(0, UnexpectedEnd())
	right := NewParseError(0, UnexpectedChar('a', 'b'))
	merged := left.Append(right)
	merged.Set[0] = VerifyFailed()
	require.Equal(t, UnexpectedEnd(), left.Set[0])
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      *ParseError
		code     string
		expected string
	}{
		{
			name:     "single char",
			err:      NewParseError(0, UnexpectedChar('h', 'x')),
			code:     CodeUnexpectedChar,
			expected: "expected 'h', found 'x'",
		},
		{
			name:     "alternatives share found",
			err:      NewParseError(0, UnexpectedCharType("decimal digit", 'x'), UnexpectedChar('-', 'x')),
			code:     CodeUnexpectedCharType,
			expected: "expected decimal digit or '-', found 'x'",
		},
		{
			name:     "mixed leaves",
			err:      NewParseError(0, UnexpectedEnd(), NumberOverflow("300")),
			code:     CodeUnexpectedEnd,
			expected: "unexpected end of input; number 300 out of range",
		},
		{
			name:     "generic only",
			err:      NewParseError(2, VerifyFailed()),
			code:     CodeVerifyFailed,
			expected: "verification failed",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.code, testCase.err.Code())
			require.Equal(t, testCase.expected, testCase.err.Message())
		})
	}
}

func TestParseErrorWithin(t *testing.T) {
	t.Parallel()

	err := NewParseError(11, UnexpectedChar(']', 'x'))
	e := err.Within("/inputs/list.txt", "[1, 2]\n[3, x]")
	require.Equal(t, Location{URI: "/inputs/list.txt", Line: 2, Column: 5, Offset: 11}, e.Location())
	require.Equal(t, "/inputs/list.txt:2:5 -- P0002: expected ']', found 'x'", e.Error())

	var pe *ParseError
	require.True(t, errors.As(e, &pe))
	require.Equal(t, err, pe)
}

func TestLocate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		text   string
		offset int
		line   int32
		column int32
	}{
		{text: "", offset: 0, line: 1, column: 1},
		{text: "abc", offset: 2, line: 1, column: 3},
		{text: "a\nbc", offset: 2, line: 2, column: 1},
		{text: "é1", offset: 2, line: 1, column: 2},
		{text: "abc", offset: 10, line: 1, column: 4},
	}
	for _, testCase := range testCases {
		loc := Locate("u", testCase.text, testCase.offset)
		require.Equal(t, testCase.line, loc.Line, testCase.text)
		require.Equal(t, testCase.column, loc.Column, testCase.text)
	}
}

func TestReporter(t *testing.T) {
	t.Parallel()

	rep := NewReporter([]string{CodeNumberOverflow})
	overflow := NewParseError(0, NumberOverflow("256"))
	missing := New(Location{URI: "/x"}, CodeFileNotFound, "missing")

	require.Nil(t, rep.Report(overflow))
	require.Equal(t, missing, rep.Report(missing))
	require.Len(t, rep.Reported(), 2)
	require.Equal(t, []Exception{missing}, rep.Fatal())
}

func TestSetStructural(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		set        Set
		structural bool
	}{
		{name: "end", set: Set{UnexpectedEnd()}, structural: true},
		{name: "char and class", set: Set{UnexpectedChar('-', 'x'), UnexpectedCharType("decimal digit", 'x')}, structural: true},
		{name: "string", set: Set{UnexpectedString("ab", "ax")}, structural: true},
		{name: "overflow", set: Set{NumberOverflow("300")}, structural: false},
		{name: "invalid float", set: Set{InvalidFloat(".")}, structural: false},
		{name: "verify", set: Set{VerifyFailed()}, structural: false},
		{name: "mixed", set: Set{UnexpectedEnd(), NumberOverflow("300")}, structural: false},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.structural, testCase.set.Structural())
		})
	}
}
