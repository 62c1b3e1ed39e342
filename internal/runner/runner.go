// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package runner evaluates one grammar over a batch of documents. Documents
// are parsed concurrently; failures are accumulated rather than stopping the
// batch.
package runner

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/fs"
	"gopkg.microglot.org/combinator.go/internal/iter"
	"gopkg.microglot.org/combinator.go/internal/parser"
)

// Mode selects what one record of a document is.
type Mode uint8

const (
	// ModeDocument parses the whole document as a single record.
	ModeDocument Mode = iota
	// ModeLines parses every non-blank line as its own record.
	ModeLines
)

type Runner interface {
	Run(ctx context.Context, req *Request) (*Response, error)
}

type Request struct {
	// Targets are URIs or paths opened through the configured file system.
	Targets []string
	// Documents are parsed as given, after any targets.
	Documents []fs.File
	Grammar   parser.Parser[string, any]
	Mode      Mode
}

// Result is one successfully parsed record. Line is zero in ModeDocument.
type Result struct {
	URI   string
	Line  int
	Value any
}

type Response struct {
	Results []Result
}

type Option func(r *runner) error

func OptionWithFS(fsys fs.FileSystem) Option {
	return func(r *runner) error {
		r.FS = fsys
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(r *runner) error {
		r.LookupENV = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(r *runner) error {
		r.Reporter = reporter
		return nil
	}
}

func OptionWithMaxConcurrency(max int) Option {
	return func(r *runner) error {
		r.MaxConcurrency = max
		return nil
	}
}

func OptionWithLogger(logger logrus.FieldLogger) Option {
	return func(r *runner) error {
		r.Logger = logger
		return nil
	}
}

func New(opts ...Option) (Runner, error) {
	r := &runner{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.LookupENV == nil {
		r.LookupENV = os.LookupEnv
	}
	if r.FS == nil {
		dfs, err := fs.NewDefaultFS(r.LookupENV)
		if err != nil {
			return nil, err
		}
		r.FS = dfs
	}
	if r.MaxConcurrency <= 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		r.MaxConcurrency = max
	}
	if r.Semaphore == nil {
		r.Semaphore = newSemaphore(r.MaxConcurrency)
	}
	if r.Reporter == nil {
		r.Reporter = exc.NewReporter(nil)
	}
	if r.Logger == nil {
		r.Logger = logrus.StandardLogger()
	}
	return r, nil
}

type runner struct {
	LookupENV      func(string) (string, bool)
	FS             fs.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Logger         logrus.FieldLogger
}

func (self *runner) Run(ctx context.Context, req *Request) (*Response, error) {
	reporter := newBatchReporter(self.Reporter)
	files := make([]fs.File, 0, len(req.Targets)+len(req.Documents))
	for _, target := range req.Targets {
		uri := normalizeTarget(target)
		in, err := self.FS.Open(ctx, uri)
		if err != nil {
			report(reporter, uri, err)
			continue
		}
		files = append(files, in...)
	}
	files = append(files, req.Documents...)
	files = lo.UniqBy(files, func(f fs.File) string {
		return f.Path(ctx)
	})

	results := make(chan fileResult, len(files))
	for offset, file := range files {
		go func(offset int, file fs.File) {
			records, err := self.runFile(ctx, reporter, file, req.Grammar, req.Mode)
			results <- fileResult{offset: offset, records: records, err: err}
		}(offset, file)
	}

	perFile := make([][]Result, len(files))
	for x := 0; x < len(files); x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				return nil, result.err
			}
			perFile[result.offset] = result.records
		}
	}

	resp := &Response{Results: lo.Flatten(perFile)}
	self.Logger.WithFields(logrus.Fields{
		"documents": len(files),
		"records":   len(resp.Results),
	}).Debug("batch complete")
	if len(reporter.Fatal()) > 0 {
		return resp, MultiException(reporter.Reported())
	}
	return resp, nil
}

// runFile only returns an error when ctx ends the batch early. Every other
// failure goes to the reporter.
func (self *runner) runFile(ctx context.Context, reporter exc.Reporter, file fs.File, grammar parser.Parser[string, any], mode Mode) ([]Result, error) {
	if err := self.Semaphore.Lock(ctx); err != nil {
		return nil, err
	}
	defer self.Semaphore.Unlock()

	uri := file.Path(ctx)
	logger := self.Logger.WithField("uri", uri)
	text, err := file.Text(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		report(reporter, uri, err)
		return nil, nil
	}
	logger.WithField("bytes", len(text)).Debug("parsing document")

	if mode == ModeDocument {
		value, perr := parser.Complete(grammar, text)
		if perr != nil {
			reporter.Report(perr.Within(uri, text))
			return nil, nil
		}
		return []Result{{URI: uri, Value: value}}, nil
	}

	lines, err := iter.Collect(ctx, iter.NewIteratorFilter(iter.NewLines(text), iter.NonBlank()))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		report(reporter, uri, err)
	}
	var records []Result
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, perr := parser.Complete(grammar, line.Text)
		if perr != nil {
			logger.WithField("line", line.Number).Debug("record failed")
			reporter.Report(perr.At(line.Offset + perr.Index).Within(uri, text))
			continue
		}
		records = append(records, Result{URI: uri, Line: line.Number, Value: value})
	}
	return records, nil
}

func report(reporter exc.Reporter, uri string, err error) {
	e, ok := err.(exc.Exception)
	if !ok {
		e = exc.WrapUnknown(exc.Location{URI: uri}, err)
	}
	reporter.Report(e)
}

// batchReporter scopes the exceptions of a single Run. Each one is still
// forwarded to the runner's reporter, which decides whether it is fatal.
type batchReporter struct {
	parent   exc.Reporter
	lock     sync.Mutex
	reported []exc.Exception
	fatal    []exc.Exception
}

func newBatchReporter(parent exc.Reporter) *batchReporter {
	return &batchReporter{parent: parent}
}

func (r *batchReporter) Report(e exc.Exception) exc.Exception {
	fatal := r.parent.Report(e)
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reported = append(r.reported, e)
	if fatal != nil {
		r.fatal = append(r.fatal, e)
	}
	return fatal
}

func (r *batchReporter) Reported() []exc.Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]exc.Exception(nil), r.reported...)
}

func (r *batchReporter) Fatal() []exc.Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]exc.Exception(nil), r.fatal...)
}

type fileResult struct {
	offset  int
	records []Result
	err     error
}
