// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultCounter is the counter used for a site that was never rotated.
const DefaultCounter uint32 = 1

// Site identifies one generated password: the site name, its rotation
// counter and the template tier the password is rendered with.
type Site struct {
	// Name is the site identifier, usually a domain such as "twitter.com".
	Name string `json:"name"`

	// Counter is bumped by the user to rotate the password of the same site
	// without changing the master password.
	Counter uint32 `json:"counter"`

	// Template is the tier name or alias ("long", "pin", "x", ...).
	Template string `json:"template"`
}

// SiteProfile is a remembered site of one user: what the user last
// generated for it. It holds no secret material.
type SiteProfile struct {
	UserName string `json:"user_name"`
	Site
	LastUsed time.Time `json:"last_used"`
}
