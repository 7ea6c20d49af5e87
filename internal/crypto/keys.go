// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-master-password/internal/secret"

// Sizes of the derived secrets, in bytes.
const (
	MasterKeySize = 64
	SiteSeedSize  = 32
)

// MasterKey is the long-lived secret of a session: derived once per
// password and user name, never persisted. Destroy it when the session ends.
type MasterKey struct {
	*secret.Bytes
}

// SiteSeed is the per-site secret from which a password is rendered.
// Destroy it once the password has been rendered.
type SiteSeed struct {
	*secret.Bytes
}

// NewMasterKey wraps raw key material, e.g. bytes received through the
// handle layer. key is moved and wiped.
func NewMasterKey(key []byte) *MasterKey {
	return &MasterKey{Bytes: secret.New(key)}
}

// NewSiteSeed wraps raw seed material. seed is moved and wiped.
func NewSiteSeed(seed []byte) *SiteSeed {
	return &SiteSeed{Bytes: secret.New(seed)}
}

// Destroy wipes the key. Safe on nil.
func (k *MasterKey) Destroy() {
	if k == nil {
		return
	}
	k.Bytes.Destroy()
}

// Clone returns an independent copy of k that the receiver owns, or nil when
// k is nil or destroyed. Use it to hand the key to another goroutine.
func (k *MasterKey) Clone() *MasterKey {
	if k == nil {
		return nil
	}
	b := k.Bytes.Clone()
	if b == nil {
		return nil
	}
	return &MasterKey{Bytes: b}
}

// Destroy wipes the seed. Safe on nil.
func (s *SiteSeed) Destroy() {
	if s == nil {
		return
	}
	s.Bytes.Destroy()
}

// alive reports whether b is a usable secret.
func alive(b *secret.Bytes) bool {
	return b != nil && b.IsAlive()
}
