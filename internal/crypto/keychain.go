// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-master-password/internal/secret"
	"github.com/MKhiriev/go-master-password/models"
	"golang.org/x/crypto/scrypt"
)

// DomainPrefix separates Master Password salts and MAC messages from any
// other use of the same primitives.
const DomainPrefix = "com.lyndir.masterpassword"

// Fixed scrypt policy. Changing any of these changes every password ever
// generated, so they are not configurable.
const (
	ScryptN = 32768
	ScryptR = 8
	ScryptP = 2
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	scryptN      int
	scryptR      int
	scryptP      int
	masterKeyLen int
}

// NewKeyChainService constructs a [KeyChainService] bound to the canonical
// Master Password parameters:
//   - scrypt N: 32768
//   - scrypt r: 8
//   - scrypt p: 2
//   - key length: 64 bytes (512 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		scryptN:      ScryptN,
		scryptR:      ScryptR,
		scryptP:      ScryptP,
		masterKeyLen: MasterKeySize,
	}
}

// MasterKey implements [KeyChainService].
func (k *keyChainService) MasterKey(password *secret.Bytes, userName string) (*MasterKey, error) {
	if !utf8.ValidString(userName) {
		return nil, fmt.Errorf("user name is not valid UTF-8: %w", ErrInvalidArgument)
	}

	salt := secret.New(scopedMessage(userName))
	defer salt.Destroy()

	key, err := k.MasterKeyCustom(password, salt, k.scryptN, k.scryptR, k.scryptP, k.masterKeyLen)
	if err != nil {
		return nil, err
	}
	return &MasterKey{Bytes: key}, nil
}

// MasterKeyCustom implements [KeyChainService]. The scrypt output is moved
// into a secret container before returning, so no plain copy outlives the
// call.
func (k *keyChainService) MasterKeyCustom(password, salt *secret.Bytes, n, r, p, keyLen int) (*secret.Bytes, error) {
	if password == nil || !password.IsAlive() {
		return nil, fmt.Errorf("password is nil or destroyed: %w", ErrInvalidArgument)
	}
	if salt == nil || !salt.IsAlive() {
		return nil, fmt.Errorf("salt is nil or destroyed: %w", ErrInvalidArgument)
	}

	dk, err := scrypt.Key(password.Expose(), salt.Expose(), n, r, p, keyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt (N=%d r=%d p=%d len=%d): %v: %w", n, r, p, keyLen, err, ErrCrypto)
	}

	return secret.New(dk), nil
}

// SiteSeed implements [KeyChainService]. The MAC is fed piecewise
// (init/update/final); the result equals a one-shot HMAC over the
// concatenated message.
func (k *keyChainService) SiteSeed(masterKey *MasterKey, siteName string, counter uint32) (*SiteSeed, error) {
	if masterKey == nil || !alive(masterKey.Bytes) {
		return nil, fmt.Errorf("master key is nil or destroyed: %w", ErrInvalidArgument)
	}
	if !utf8.ValidString(siteName) {
		return nil, fmt.Errorf("site name is not valid UTF-8: %w", ErrInvalidArgument)
	}

	mac := hmac.New(sha256.New, masterKey.Expose())
	mac.Write([]byte(DomainPrefix))
	mac.Write(binary.BigEndian.AppendUint32(nil, uint32(len(siteName))))
	mac.Write([]byte(siteName))
	mac.Write(binary.BigEndian.AppendUint32(nil, counter))

	return &SiteSeed{Bytes: secret.New(mac.Sum(nil))}, nil
}

// Identicon implements [KeyChainService].
func (k *keyChainService) Identicon(password *secret.Bytes, displayName string) (models.Identicon, error) {
	if !alive(password) {
		return models.Identicon{}, fmt.Errorf("password is nil or destroyed: %w", ErrInvalidArgument)
	}
	if !utf8.ValidString(displayName) {
		return models.Identicon{}, fmt.Errorf("display name is not valid UTF-8: %w", ErrInvalidArgument)
	}

	mac := hmac.New(sha256.New, password.Expose())
	mac.Write([]byte(displayName))
	seed := mac.Sum(nil)
	defer secret.Wipe(seed)

	return identiconFromSeed(seed), nil
}

// scopedMessage builds prefix ‖ uint32be(len(s)) ‖ s, the shape shared by
// the master key salt and the site seed message.
func scopedMessage(s string) []byte {
	msg := make([]byte, 0, len(DomainPrefix)+4+len(s))
	msg = append(msg, DomainPrefix...)
	msg = binary.BigEndian.AppendUint32(msg, uint32(len(s)))
	msg = append(msg, s...)
	return msg
}
