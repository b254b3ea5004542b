// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotAvailable replaces build metadata that was not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with linker flags.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(buildVersion),
		Date:    orNA(buildDate),
		Commit:  orNA(buildCommit),
	}
}

// String renders the three build lines printed on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
