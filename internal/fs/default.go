// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

// NewDefaultFS searches the platform's shared data directories for
// documents. lookup is typically os.LookupEnv.
func NewDefaultFS(lookup func(string) (string, bool), options ...FileSystemLocalOption) (FileSystem, error) {
	roots := getDefaultRoots(lookup)
	f := make(FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		rf, err := NewFileSystemLocal(root, options...)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}
