// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package compiler

import (
	"path/filepath"
)

func getDefaultRoots(lookup func(string) (string, bool)) []string {
	local, ok := lookup("LOCALAPPDATA")
	if !ok || local == "" {
		userprofile, _ := lookup("USERPROFILE")
		local = filepath.Join(userprofile, "AppData", "Local")
	}
	programData, ok := lookup("ProgramData")
	if !ok || programData == "" {
		systemdrive, _ := lookup("SystemDrive")
		programData = filepath.Join(systemdrive+`\`, "ProgramData")
	}
	return []string{
		filepath.Join(local, "steamkit", "enums"),
		filepath.Join(programData, "steamkit", "enums"),
	}
}
