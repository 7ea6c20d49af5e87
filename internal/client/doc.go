// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// When the configuration names a site the client runs once: it prompts for
// whatever is missing, prints (or copies) the password and exits. Otherwise
// it starts the background workers and hands the terminal to the TUI.
package client
