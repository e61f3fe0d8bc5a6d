// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"os"

	"github.com/steamkit/enums/internal/fs"
	"github.com/steamkit/enums/internal/idl"
)

// NewDefaultFS searches the shared data directories for definition files,
// e.g. ~/.local/share/steamkit/enums and /usr/share/steamkit/enums on unix
// systems. Directories that do not exist are left out.
func NewDefaultFS(lookup func(string) (string, bool)) (idl.FileSystem, error) {
	roots := getDefaultRoots(lookup)
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		if stat, err := os.Stat(root); err != nil || !stat.IsDir() {
			continue
		}
		rf, err := fs.NewFileSystemLocal(root)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}
