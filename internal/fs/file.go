// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"io"
	"strings"

	"gopkg.microglot.org/combinator.go/internal/exc"
)

// NewFileString wraps static string content in File.
func NewFileString(path string, content string) File {
	return NewFileFN(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	})
}

type fileIOFunc struct {
	path string
	body func() (io.ReadCloser, error)
}

// NewFileFN is intended to wrap actual file based content in the File
// interface. The given body function is used each time there is a call to the
// File.Text method so it must return a new io.ReadCloser handle.
func NewFileFN(path string, body func() (io.ReadCloser, error)) File {
	return &fileIOFunc{
		path: path,
		body: body,
	}
}

func (f *fileIOFunc) Path(ctx context.Context) string {
	return f.path
}

// Text reads the whole body. Parsers work against fully materialized input
// so there is no streaming variant.
func (f *fileIOFunc) Text(ctx context.Context) (string, error) {
	rc, err := f.body()
	if err != nil {
		return "", fsErr(f.path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(&ctxReader{ctx: ctx, r: rc})
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", exc.WrapUnknown(exc.Location{URI: f.path}, err)
	}
	return string(b), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (self *ctxReader) Read(p []byte) (int, error) {
	if err := self.ctx.Err(); err != nil {
		return 0, err
	}
	return self.r.Read(p)
}
