// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Error kinds shared by every derivation stage. Packages re-export them under
// their own names so callers can match with [errors.Is] against either.
var (
	// ErrCrypto means the key-stretching or MAC primitive rejected its input
	// or failed internally. It is fatal and retrying will not help.
	ErrCrypto = errors.New("crypto primitive failure")

	// ErrInvalidArgument means a caller supplied an unknown template tier or
	// text that is not valid UTF-8.
	ErrInvalidArgument = errors.New("invalid argument")
)
