// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable replaces build metadata that was not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the
// binary by linker flags. Blank values read as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// Version returns the release version of the build.
func (a AppBuildInfo) Version() string { return orNotAvailable(a.version) }

// Date returns the build timestamp.
func (a AppBuildInfo) Date() string { return orNotAvailable(a.date) }

// Commit returns the source-control commit of the build.
func (a AppBuildInfo) Commit() string { return orNotAvailable(a.commit) }

// String renders the one-line form printed by the version command.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("devutils %s (commit %s, built %s)", a.Version(), a.Commit(), a.Date())
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
