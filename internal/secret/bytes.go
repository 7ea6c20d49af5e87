// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"fmt"
	"io"
	"sync"

	"github.com/awnumar/memguard"
)

// Redacted is what every printable representation of [Bytes] renders to.
const Redacted = "[REDACTED]"

// Bytes is an owned, fixed-length buffer of secret material.
//
// A Bytes value has exactly one owner at a time. Passing it to another
// component hands over ownership; the receiver is then responsible for
// calling Destroy. All methods are safe on a nil receiver.
type Bytes struct {
	mu        sync.RWMutex
	buf       *memguard.LockedBuffer
	destroyed bool
}

// New moves src into locked memory and wipes src. The caller must not use
// src afterwards.
func New(src []byte) *Bytes {
	return &Bytes{buf: memguard.NewBufferFromBytes(src)}
}

// FromString copies s into locked memory.
//
// Go strings are immutable, so the memory backing s cannot be wiped. Prefer
// [New] whenever the secret is already available as a byte slice.
func FromString(s string) *Bytes {
	return New([]byte(s))
}

// Expose returns the plaintext bytes. The returned slice aliases locked,
// read-only memory: it must not be modified, retained after Destroy, or
// logged. Returns nil once the container has been destroyed.
func (s *Bytes) Expose() []byte {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.destroyed || s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// Len returns the number of secret bytes held, or 0 after Destroy.
func (s *Bytes) Len() int {
	if s == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.destroyed || s.buf == nil {
		return 0
	}
	return s.buf.Size()
}

// IsAlive reports whether Destroy has not been called yet.
func (s *Bytes) IsAlive() bool {
	if s == nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.destroyed
}

// Destroy wipes the secret bytes and releases the locked memory. It is
// idempotent.
func (s *Bytes) Destroy() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}
	if s.buf != nil {
		s.buf.Destroy()
	}
	s.destroyed = true
}

// Clone returns an independent copy of s in fresh locked memory, or nil
// when s is nil or destroyed. The copy never passes through the Go heap.
func (s *Bytes) Clone() *Bytes {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.destroyed {
		return nil
	}
	if s.buf == nil {
		return New(nil)
	}

	buf := memguard.NewBuffer(s.buf.Size())
	buf.Copy(s.buf.Bytes())
	buf.Freeze()
	return &Bytes{buf: buf}
}

// Equal compares the contents of s and other in constant time. Destroyed
// or nil containers are never equal to anything.
func (s *Bytes) Equal(other *Bytes) bool {
	if s == nil || other == nil {
		return false
	}
	if !s.IsAlive() || !other.IsAlive() {
		return false
	}
	if s == other {
		return true
	}

	theirs := other.Expose()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.buf == nil {
		return len(theirs) == 0
	}
	return s.buf.EqualTo(theirs)
}

// String implements [fmt.Stringer].
func (s *Bytes) String() string {
	return Redacted
}

// GoString implements [fmt.GoStringer].
func (s *Bytes) GoString() string {
	return "secret.Bytes{" + Redacted + "}"
}

// Format implements [fmt.Formatter] so that no verb (%x, %v, %q ...) can
// reach the underlying bytes.
func (s *Bytes) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, s.GoString())
		return
	}
	_, _ = io.WriteString(f, Redacted)
}

// MarshalJSON implements [encoding/json.Marshaler].
func (s *Bytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (s *Bytes) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

// Wipe overwrites b with zeroes. Use it for transient plain slices that
// held secret material before being moved into a [Bytes].
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
