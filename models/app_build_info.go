// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata the linker did not inject.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into mpw with
// -ldflags "-X main.buildVersion=...". Missing values read as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// String renders one "Build <field>: <value>" line per field.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return NotAvailable
	}
	return v
}
