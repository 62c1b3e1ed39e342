// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
	"strings"
)

// Leaf is a single concrete reason a primitive or predicate rejected its
// input. The set of codes is closed; use the constructors below rather than
// building a Leaf by hand.
type Leaf struct {
	Code     string
	Expected string
	Found    string
}

func UnexpectedEnd() Leaf {
	return Leaf{Code: CodeUnexpectedEnd, Found: "end of input"}
}

func UnexpectedChar(expected rune, found rune) Leaf {
	return Leaf{Code: CodeUnexpectedChar, Expected: quoteRune(expected), Found: quoteRune(found)}
}

// ExpectedEnd reports input that remains where none should.
func ExpectedEnd(found rune) Leaf {
	return Leaf{Code: CodeUnexpectedChar, Expected: "end of input", Found: quoteRune(found)}
}

func UnexpectedString(expected string, found string) Leaf {
	return Leaf{Code: CodeUnexpectedString, Expected: fmt.Sprintf("%q", expected), Found: fmt.Sprintf("%q", found)}
}

// UnexpectedCharType reports a rune outside a named character class such as
// "decimal digit" or "whitespace".
func UnexpectedCharType(class string, found rune) Leaf {
	return Leaf{Code: CodeUnexpectedCharType, Expected: class, Found: quoteRune(found)}
}

func NumberOverflow(numeral string) Leaf {
	return Leaf{Code: CodeNumberOverflow, Found: numeral}
}

func InvalidFloat(numeral string) Leaf {
	return Leaf{Code: CodeInvalidFloat, Found: numeral}
}

// VerifyFailed is the generic marker produced by an unmapped predicate. Any
// concrete leaf takes precedence over it when errors are merged.
func VerifyFailed() Leaf {
	return Leaf{Code: CodeVerifyFailed}
}

func (l Leaf) Generic() bool {
	return l.Code == CodeVerifyFailed
}

// Structural reports whether the leaf describes input of the wrong shape
// rather than a value that was read but could not be converted or accepted.
func (l Leaf) Structural() bool {
	switch l.Code {
	case CodeUnexpectedEnd, CodeUnexpectedChar, CodeUnexpectedCharType, CodeUnexpectedString:
		return true
	default:
		return false
	}
}

func (l Leaf) String() string {
	switch l.Code {
	case CodeUnexpectedEnd:
		return "unexpected end of input"
	case CodeNumberOverflow:
		return fmt.Sprintf("number %s out of range", l.Found)
	case CodeInvalidFloat:
		return fmt.Sprintf("invalid float %q", l.Found)
	case CodeVerifyFailed:
		return "verification failed"
	default:
		return fmt.Sprintf("expected %s, found %s", l.Expected, l.Found)
	}
}

// Set is an ordered, non-empty collection of leaves gathered from every
// alternative tried at one branch point.
type Set []Leaf

// Generic reports whether the set holds nothing but VerifyFailed markers.
func (s Set) Generic() bool {
	for _, l := range s {
		if !l.Generic() {
			return false
		}
	}
	return true
}

// Structural reports whether every leaf in the set is structural.
func (s Set) Structural() bool {
	for _, l := range s {
		if !l.Structural() {
			return false
		}
	}
	return true
}

// String renders "expected A or B, found X" when every leaf describes an
// expectation against the same found value, and joins the individual
// messages otherwise.
func (s Set) String() string {
	if len(s) == 1 {
		return s[0].String()
	}
	expected := make([]string, 0, len(s))
	found := ""
	for offset, l := range s {
		if l.Expected == "" || (offset > 0 && l.Found != found) {
			expected = nil
			break
		}
		found = l.Found
		expected = append(expected, l.Expected)
	}
	if expected != nil {
		return fmt.Sprintf("expected %s, found %s", strings.Join(expected, " or "), found)
	}
	msgs := make([]string, 0, len(s))
	for _, l := range s {
		msgs = append(msgs, l.String())
	}
	return strings.Join(msgs, "; ")
}
