// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"gopkg.microglot.org/combinator.go/internal/optional"
	"gopkg.microglot.org/combinator.go/internal/parser"
)

const (
	DefaultListOpen      = '['
	DefaultListClose     = ']'
	DefaultListSeparator = ','
)

type (
	listConfig struct {
		open       rune
		close      rune
		separator  rune
		allowEmpty bool
	}

	// ListOption defines the List functional option type.
	ListOption func(*listConfig)
)

// WithOpen configures the opening delimiter.
func WithOpen(r rune) ListOption { return func(c *listConfig) { c.open = r } }

// WithClose configures the closing delimiter.
func WithClose(r rune) ListOption { return func(c *listConfig) { c.close = r } }

// WithSeparator configures the rune between elements.
func WithSeparator(r rune) ListOption { return func(c *listConfig) { c.separator = r } }

// WithAllowEmpty configures whether a list without elements is accepted.
func WithAllowEmpty(allow bool) ListOption { return func(c *listConfig) { c.allowEmpty = allow } }

// List parses delimited, separated elements such as "[1, 2, 3]". Whitespace
// is allowed around every element and before the closing delimiter. Unless
// WithAllowEmpty is given, at least one element is required.
func List[O any](element parser.Parser[string, O], options ...ListOption) parser.Parser[string, []O] {
	cfg := &listConfig{
		open:      DefaultListOpen,
		close:     DefaultListClose,
		separator: DefaultListSeparator,
	}
	for _, opt := range options {
		opt(cfg)
	}

	body := parser.SepBy(Spaced(element), Char(cfg.separator))
	if cfg.allowEmpty {
		body = parser.Map(parser.Optional(body), func(items optional.Optional[[]O]) []O {
			return items.ValueOr([]O{})
		})
	}
	closing := parser.ThenParse(Whitespace(), Char(cfg.close))
	return parser.ThenConsume(parser.ThenParse(Char(cfg.open), body), closing)
}
