// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultFS(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "combinator"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "combinator", "shared.txt"), []byte("7"), 0o644))

	lookup := func(key string) (string, bool) {
		if key == "XDG_DATA_DIRS" {
			return filepath.Join(root, "missing") + ":" + root, true
		}
		return "", false
	}
	dfs, err := NewDefaultFS(lookup)
	require.NoError(t, err)
	files, err := dfs.Open(context.Background(), "shared.txt")
	require.NoError(t, err)
	require.Len(t, files, 1)
}
