// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// mpw front ends.
//
// All Msg* constants are human-readable message strings shown to the user
// by the terminal UI and the one-shot command line mode. Keeping them in one
// place ensures consistent wording across both.
package app

const (
	// MsgNameRequired is shown when the user name is submitted empty.
	MsgNameRequired = "full name is required"

	// MsgPasswordRequired is shown when the master password is submitted
	// empty.
	MsgPasswordRequired = "master password is required"

	// MsgSiteRequired is shown when the site name is submitted empty.
	MsgSiteRequired = "site name is required"

	// MsgInvalidCounter is shown when the counter is not an integer in
	// [1, 4294967295].
	MsgInvalidCounter = "counter must be a whole number of 1 or more"

	// MsgInvalidTemplate is shown when the template is not a known tier
	// name, alias or id.
	MsgInvalidTemplate = "unknown template; use maximum, long, medium, short, basic or pin"

	// MsgDerivingKey is shown while the master key is being derived.
	MsgDerivingKey = "deriving master key..."

	// MsgKeyDerivationFailed prefixes a failed master key derivation.
	MsgKeyDerivationFailed = "master key derivation failed"

	// MsgGenerationFailed prefixes a failed site password generation.
	MsgGenerationFailed = "password generation failed"

	// MsgCopied is shown after the password was copied to the clipboard.
	MsgCopied = "copied to clipboard"

	// MsgCopyFailed prefixes a failed clipboard write.
	MsgCopyFailed = "copy to clipboard failed"

	// MsgRecalled is shown after a stored site profile filled the form.
	MsgRecalled = "counter and template restored from the last use"

	// MsgForgotten is shown after the stored site profile was deleted.
	MsgForgotten = "site forgotten"

	// MsgNotStored is shown when there is no stored profile to delete.
	MsgNotStored = "site is not stored"

	// MsgForgetFailed prefixes a failed profile deletion.
	MsgForgetFailed = "forgetting the site failed"

	// MsgLocked is shown after the master key was destroyed on request.
	MsgLocked = "locked; master key destroyed"
)
