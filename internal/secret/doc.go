// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret provides the container that every secret-bearing value in
// go-master-password travels in: raw master passwords, master keys and site
// seeds.
//
// A [Bytes] value owns a memguard LockedBuffer: the bytes live in mlocked
// memory surrounded by guard pages and are wiped when [Bytes.Destroy] is
// called. memguard also registers a finalizer, but finalizer timing is not
// guaranteed by the Go runtime, so callers must Destroy explicitly (usually
// with defer) as soon as the value is no longer needed.
//
// Printing, formatting and JSON/text marshalling of a [Bytes] value always
// yield [Redacted]. The only way to reach the plaintext is [Bytes.Expose],
// which keeps accidental leaks visible in review.
package secret
