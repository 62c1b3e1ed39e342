// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gopkg.microglot.org/combinator.go/internal/exc"
	"gopkg.microglot.org/combinator.go/internal/input"
)

type trace[S input.Source, O any] struct {
	name   string
	p      Parser[S, O]
	logger logrus.FieldLogger
}

// Trace logs every attempt of p at debug level. The result of p is returned
// as-is.
func Trace[S input.Source, O any](name string, p Parser[S, O], logger logrus.FieldLogger) Parser[S, O] {
	return &trace[S, O]{name: name, p: p, logger: logger}
}

func (self *trace[S, O]) Parse(in input.Input[S]) (input.Input[S], O, *exc.ParseError) {
	if !debugEnabled(self.logger) {
		return self.p.Parse(in)
	}
	entry := self.logger.WithFields(logrus.Fields{
		"parser": self.name,
		"index":  in.Index,
	})
	entry.Debug("enter")
	rest, out, err := self.p.Parse(in)
	if err != nil {
		entry.WithFields(logrus.Fields{
			"failed_at": err.Index,
			"code":      err.Code(),
		}).Debugf("fail: %s", err.Message())
		return rest, out, err
	}
	entry.WithField("rest", rest.Index).Debugf("match: %s", spew.Sdump(out))
	return rest, out, nil
}

// Dumping outputs is expensive; skip it when the logger says debug is off.
func debugEnabled(logger logrus.FieldLogger) bool {
	switch l := logger.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}
