// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"strings"

	"gopkg.microglot.org/combinator.go/internal/exc"
)

// MultiException is returned by Run when any document failed. It holds every
// reported exception, fatal or not, in the order they were reported.
type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
