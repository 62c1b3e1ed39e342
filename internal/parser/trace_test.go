// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	p := Trace("digit", digit(), logger)

	rest, out, err := Apply(p, "5")
	require.Nil(t, err)
	require.Equal(t, '5', out)
	require.True(t, rest.Empty())

	_, _, err = Apply(p, "x")
	require.NotNil(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	require.Equal(t, "enter", entries[0].Message)
	require.Equal(t, "digit", entries[0].Data["parser"])
	require.Equal(t, 1, entries[1].Data["rest"])
	require.Equal(t, "fail: expected decimal digit, found 'x'", entries[3].Message)
	require.Equal(t, 0, entries[3].Data["failed_at"])
}

func TestTraceQuietAboveDebug(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	_, out, err := Apply(Trace("digit", digit(), logger), "5")
	require.Nil(t, err)
	require.Equal(t, '5', out)
	require.Empty(t, hook.AllEntries())
}
