// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package numeric parses integer and floating point literals into native Go
// numbers. Every parser here is composed from the combinators in the parser
// package and the primitives in the text package.
package numeric

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/optional"
	"gopkg.microglot.org/combinator.go/internal/parser"
	"gopkg.microglot.org/combinator.go/internal/text"
)

const (
	MinRadix = 2
	MaxRadix = 36
)

func checkRadix(radix int) {
	if radix < MinRadix || radix > MaxRadix {
		panic(fmt.Sprintf("numeric: radix %d outside [%d, %d]", radix, MinRadix, MaxRadix))
	}
}

// digitValue returns the value of r as a digit, accepting 0-9 and then a-z
// in either case, or -1.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// IsDigit reports whether r is a digit in radix.
func IsDigit(r rune, radix int) bool {
	v := digitValue(r)
	return v >= 0 && v < radix
}

// DigitClass names the character class of digits in radix for error leaves.
func DigitClass(radix int) string {
	switch radix {
	case 2:
		return "binary digit"
	case 8:
		return "octal digit"
	case 10:
		return "decimal digit"
	case 16:
		return "hexadecimal digit"
	default:
		return fmt.Sprintf("radix %d digit", radix)
	}
}

// Digits matches one or more digits in radix and returns them as a numeral
// string, prefixed with "-" when negative is set. A non-digit at the start
// fails with UnexpectedCharType and consumes nothing.
func Digits(radix int, negative bool) parser.Parser[string, string] {
	checkRadix(radix)
	class := DigitClass(radix)
	digit := parser.Expect(text.AnyChar(), func(r rune) bool {
		return IsDigit(r, radix)
	}, func(r rune) exc.Leaf {
		return exc.UnexpectedCharType(class, r)
	})
	sign := ""
	if negative {
		sign = "-"
	}
	return parser.Map(parser.Many1(digit), func(digits []rune) string {
		return sign + string(digits)
	})
}

// Unsigned parses a run of radix digits into T. A leading sign is rejected
// at the first rune. A numeral that does not fit T fails with NumberOverflow
// at the start of the numeral.
func Unsigned[T constraints.Unsigned](radix int) parser.Parser[string, T] {
	bits := bitSize[T]()
	return parser.MapResult(Digits(radix, false), func(numeral string) (T, *exc.Leaf) {
		v, err := strconv.ParseUint(numeral, radix, bits)
		if err != nil {
			leaf := exc.NumberOverflow(numeral)
			return 0, &leaf
		}
		return T(v), nil
	})
}

// Signed parses an optional '-' followed by radix digits into T. A numeral
// that does not fit T fails with NumberOverflow at the start of the numeral,
// including its sign.
func Signed[T constraints.Signed](radix int) parser.Parser[string, T] {
	bits := bitSize[T]()
	return parser.MapResult(signedNumeral(radix), func(numeral string) (T, *exc.Leaf) {
		v, err := strconv.ParseInt(numeral, radix, bits)
		if err != nil {
			leaf := exc.NumberOverflow(numeral)
			return 0, &leaf
		}
		return T(v), nil
	})
}

// Float parses a decimal float of the form [-]int[.frac], where either side
// of the point may be missing. "2.", ".5" and "-2" are accepted. When no
// digits are present at all, or the sign has no integer digits after it, the
// parse fails with InvalidFloat at the start. A value beyond the range of T
// fails with NumberOverflow.
func Float[T constraints.Float]() parser.Parser[string, T] {
	bits := bitSize[T]()
	integer := parser.Optional(signedNumeral(10))
	fraction := parser.Optional(parser.ThenParse(
		text.Char('.'),
		parser.Map(parser.Optional(Digits(10, false)), func(digits optional.Optional[string]) string {
			return digits.ValueOr("")
		}),
	))
	return parser.MapResult(parser.AndThen(integer, fraction), func(parts parser.Pair[optional.Optional[string], optional.Optional[string]]) (T, *exc.Leaf) {
		numeral := parts.First.ValueOr("") + "." + parts.Second.ValueOr("")
		v, err := strconv.ParseFloat(numeral, bits)
		if err != nil {
			leaf := exc.InvalidFloat(numeral)
			if errors.Is(err, strconv.ErrRange) {
				leaf = exc.NumberOverflow(numeral)
			}
			return 0, &leaf
		}
		return T(v), nil
	})
}

// The sign decides which digit parser runs, so the numeral text carries it
// into the conversion.
func signedNumeral(radix int) parser.Parser[string, string] {
	checkRadix(radix)
	return parser.FlatMap(parser.Optional(text.Char('-')), func(minus optional.Optional[rune]) parser.Parser[string, string] {
		return Digits(radix, minus.IsPresent())
	})
}

func bitSize[T constraints.Integer | constraints.Float]() int {
	var zero T
	return reflect.TypeOf(zero).Bits()
}
