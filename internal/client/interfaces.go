// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-master-password/internal/secret"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end, implemented by [tui.TUI].
type UI interface {
	Run(ctx context.Context) error
}

// Prompter asks the user for the values missing from the configuration in
// one-shot mode.
type Prompter interface {
	// ReadLine shows prompt and returns the entered line without the
	// trailing newline.
	ReadLine(prompt string) (string, error)

	// ReadSecret shows prompt and reads a line without echoing it. The
	// caller owns the returned secret.
	ReadSecret(prompt string) (*secret.Bytes, error)
}
