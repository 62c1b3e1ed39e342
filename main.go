// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/fs"
	"gopkg.microglot.org/combinator.go/internal/runner"
)

type opts struct {
	grammarOpts
	Files          bool
	Lines          bool
	Roots          []string
	Exts           []string
	NonFatal       []string
	Output         string
	Format         string
	Debug          bool
	MaxConcurrency int
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("combinator", pflag.ExitOnError)
	flags.StringVar(&op.Grammar, "grammar", grammarInt, "Grammar to apply: uint, int, float, string, or list.")
	flags.StringVar(&op.Element, "element", grammarInt, "Element grammar of a list: uint, int, float, or string.")
	flags.StringVar(&op.Type, "type", "", "Numeric kind such as u8, i32, or f64. Defaults to the widest kind of the grammar.")
	flags.IntVar(&op.Radix, "radix", 10, "Radix of integer digits, 2 through 36.")
	flags.StringVar(&op.Open, "open", "", "Opening delimiter of a list.")
	flags.StringVar(&op.Close, "close", "", "Closing delimiter of a list.")
	flags.StringVar(&op.Separator, "separator", "", "Separator between list elements.")
	flags.BoolVar(&op.AllowEmpty, "allow-empty", false, "Accept lists without elements.")
	flags.BoolVar(&op.Files, "file", false, "Treat arguments as documents to open instead of literal input.")
	flags.BoolVar(&op.Lines, "lines", false, "Parse every non-blank line of a document as its own record.")
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for documents.")
	flags.StringSliceVar(&op.Exts, "ext", nil, "Only open files with these extensions, such as .txt, when a target is a directory.")
	flags.StringSliceVar(&op.NonFatal, "non-fatal", nil, "Exception codes, such as P0005, that are logged as warnings instead of failing the run.")
	flags.StringVar(&op.Output, "output", "-", "Output file or - for STDOUT.")
	flags.StringVar(&op.Format, "format", formatText, "Output format: text or json.")
	flags.BoolVar(&op.Debug, "debug", false, "Log every parser attempt.")
	flags.IntVar(&op.MaxConcurrency, "max-concurrency", 0, "Documents parsed at once. Zero uses the number of CPUs.")
	_ = flags.Parse(os.Args[1:])

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if op.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	grammar, err := buildGrammar(op.grammarOpts, logger)
	if err != nil {
		fail(err)
	}

	r, reporter, err := newRunner(op, os.LookupEnv, logger)
	if err != nil {
		fail(err)
	}

	req := &runner.Request{Grammar: grammar, Mode: runner.ModeDocument}
	if op.Lines {
		req.Mode = runner.ModeLines
	}
	if op.Files {
		req.Targets = flags.Args()
	} else {
		for offset, arg := range flags.Args() {
			req.Documents = append(req.Documents, fs.NewFileString(fmt.Sprintf("arg:%d", offset+1), arg))
		}
	}

	out, runErr := r.Run(ctx, req)
	var me runner.MultiException
	if runErr != nil && !errors.As(runErr, &me) {
		fail(runErr)
	}
	if out != nil {
		content, err := render(op.Format, out.Results)
		if err != nil {
			fail(err)
		}
		if err := write(ctx, op.Output, content); err != nil {
			fail(err)
		}
	}
	if len(me) > 0 {
		for _, err := range me {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
	for _, e := range reporter.Reported() {
		logger.Warn(e.Error())
	}
}

// newRunner searches every root in order and then the shared data
// directories. The returned reporter sees every exception of the run,
// including those marked non-fatal.
func newRunner(op *opts, lookup func(string) (string, bool), logger logrus.FieldLogger) (runner.Runner, exc.Reporter, error) {
	var options []fs.FileSystemLocalOption
	if len(op.Exts) > 0 {
		options = append(options, fs.WithOptionExtensions(op.Exts...))
	}
	df, err := fs.NewDefaultFS(lookup, options...)
	if err != nil {
		return nil, nil, err
	}
	mf := make(fs.FileSystemMulti, 0, len(op.Roots)+1)
	for _, root := range op.Roots {
		rf, err := fs.NewFileSystemLocal(root, options...)
		if err != nil {
			return nil, nil, err
		}
		mf = append(mf, rf)
	}
	mf = append(mf, df)

	reporter := exc.NewReporter(op.NonFatal)
	r, err := runner.New(
		runner.OptionWithLookupEnv(lookup),
		runner.OptionWithFS(mf),
		runner.OptionWithExcReporter(reporter),
		runner.OptionWithLogger(logger),
		runner.OptionWithMaxConcurrency(op.MaxConcurrency),
	)
	if err != nil {
		return nil, nil, err
	}
	return r, reporter, nil
}

func write(ctx context.Context, output string, content string) error {
	if output == "-" {
		_, err := fmt.Fprint(os.Stdout, content)
		return err
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	dir, err := fs.NewFileSystemLocal(filepath.Dir(abs))
	if err != nil {
		return err
	}
	return dir.Write(ctx, filepath.Base(abs), content)
}

func fail(err error) {
	var e exc.Exception
	if errors.As(err, &e) && e.Location().URI == "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n", e.Code(), e.Message())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
}
