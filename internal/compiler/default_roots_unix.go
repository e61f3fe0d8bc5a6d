// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build aix || darwin || dragonfly || freebsd || (js && wasm) || linux || netbsd || openbsd || solaris

package compiler

import (
	"os"
	"path/filepath"
	"strings"
)

// getDefaultRoots follows the XDG base directory layout. The user data
// directory comes first so a local definition table overrides a system one.
func getDefaultRoots(lookup func(string) (string, bool)) []string {
	expand := func(s string) string {
		return os.Expand(s, func(k string) string {
			v, _ := lookup(k)
			return v
		})
	}
	dirs := make([]string, 0, 3)
	if home, ok := lookup("XDG_DATA_HOME"); ok && home != "" {
		dirs = append(dirs, home)
	} else if h, ok := lookup("HOME"); ok && h != "" {
		dirs = append(dirs, filepath.Join(h, ".local", "share"))
	}
	system, ok := lookup("XDG_DATA_DIRS")
	if !ok || system == "" {
		system = "/usr/local/share/:/usr/share/"
	}
	dirs = append(dirs, strings.Split(system, ":")...)

	roots := make([]string, 0, len(dirs))
	seen := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		p := filepath.Join(expand(dir), "steamkit", "enums")
		if seen[p] {
			continue
		}
		seen[p] = true
		roots = append(roots, p)
	}
	return roots
}
