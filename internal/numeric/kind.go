// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package numeric

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/parser"
)

type Signedness uint8

const (
	SignednessUnsigned Signedness = iota
	SignednessSigned
)

func (self Signedness) String() string {
	switch self {
	case SignednessUnsigned:
		return "unsigned"
	case SignednessSigned:
		return "signed"
	default:
		return fmt.Sprintf("Signedness(%d)", uint8(self))
	}
}

// Kind describes one native numeric type that literals can be parsed into.
type Kind struct {
	Name       string
	Bits       int
	Signedness Signedness
	Float      bool
	build      func(radix int) parser.Parser[string, any]
}

// Parser returns a parser producing values of the kind's Go type boxed in
// an any. radix is ignored for floats, which are always decimal.
func (self Kind) Parser(radix int) parser.Parser[string, any] {
	return self.build(radix)
}

func boxed[T any](p parser.Parser[string, T]) parser.Parser[string, any] {
	return parser.Map(p, func(v T) any {
		return v
	})
}

func unsignedKind[T constraints.Unsigned](name string) Kind {
	return Kind{
		Name:       name,
		Bits:       bitSize[T](),
		Signedness: SignednessUnsigned,
		build: func(radix int) parser.Parser[string, any] {
			return boxed(Unsigned[T](radix))
		},
	}
}

func signedKind[T constraints.Signed](name string) Kind {
	return Kind{
		Name:       name,
		Bits:       bitSize[T](),
		Signedness: SignednessSigned,
		build: func(radix int) parser.Parser[string, any] {
			return boxed(Signed[T](radix))
		},
	}
}

func floatKind[T constraints.Float](name string) Kind {
	return Kind{
		Name:       name,
		Bits:       bitSize[T](),
		Signedness: SignednessSigned,
		Float:      true,
		build: func(int) parser.Parser[string, any] {
			return boxed(Float[T]())
		},
	}
}

var kinds = map[string]Kind{}

func register(k Kind) {
	kinds[k.Name] = k
}

func init() {
	register(unsignedKind[uint8]("u8"))
	register(unsignedKind[uint16]("u16"))
	register(unsignedKind[uint32]("u32"))
	register(unsignedKind[uint64]("u64"))
	register(unsignedKind[uint]("uint"))
	register(signedKind[int8]("i8"))
	register(signedKind[int16]("i16"))
	register(signedKind[int32]("i32"))
	register(signedKind[int64]("i64"))
	register(signedKind[int]("int"))
	register(floatKind[float32]("f32"))
	register(floatKind[float64]("f64"))
}

// Lookup finds a registered kind by name.
func Lookup(name string) (Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return Kind{}, exc.New(exc.Location{}, exc.CodeUnknownNumericKind, fmt.Sprintf("unknown numeric kind %q, expected one of %v", name, Names()))
	}
	return k, nil
}

// MustLookup is Lookup that panics on an unknown name.
func MustLookup(name string) Kind {
	k, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return k
}

// Names lists every registered kind in sorted order.
func Names() []string {
	names := lo.Keys(kinds)
	sort.Strings(names)
	return names
}
