// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"gopkg.microglot.org/combinator.go/internal/optional"
)

// Line is one line of a document. Offset is the byte offset of the first
// byte of Text within the document. Text has no line terminator.
type Line struct {
	Number int
	Offset int
	Text   string
}

// Blank reports whether the line holds only whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// NewLines splits text into lines. Both "\n" and "\r\n" end a line, and a
// final line without a terminator is still returned.
func NewLines(text string) Iterator[Line] {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 4096), len(text)+1)
	scanner.Split(scanTerminatedLines)
	return &lines{scanner: scanner}
}

// NonBlank is a Filter dropping whitespace-only lines.
func NonBlank() Filter[Line] {
	return FilterFunc[Line](func(ctx context.Context, l Line) bool {
		return !l.Blank()
	})
}

type lines struct {
	scanner *bufio.Scanner
	number  int
	offset  int
}

func (self *lines) Next(ctx context.Context) optional.Optional[Line] {
	if !self.scanner.Scan() {
		return optional.None[Line]()
	}
	raw := self.scanner.Text()
	self.number = self.number + 1
	l := Line{
		Number: self.number,
		Offset: self.offset,
		Text:   strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r"),
	}
	self.offset = self.offset + len(raw)
	return optional.Some(l)
}

func (self *lines) Close(context.Context) error {
	return self.scanner.Err()
}

// Like bufio.ScanLines but keeps the terminator so offsets stay exact.
func scanTerminatedLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
