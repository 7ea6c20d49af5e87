// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package template

import (
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/secret"
)

// Select returns the template of tier chosen by the first seed byte.
func Select(seed []byte, tier Tier) (string, error) {
	templates, ok := tierTemplates[tier]
	if !ok {
		return "", fmt.Errorf("unknown template tier %d: %w", uint32(tier), ErrInvalidArgument)
	}
	if len(seed) == 0 {
		return "", fmt.Errorf("empty site seed: %w", ErrInvalidArgument)
	}
	return templates[int(seed[0])%len(templates)], nil
}

// Render produces the password of seed for tier.
//
// seed[0] selects the template; seed[i] renders template position i-1. No
// template is longer than [crypto.SiteSeedSize]-1, so a full seed always
// suffices. The returned password is a secret owned by the caller.
func Render(seed *crypto.SiteSeed, tier Tier) (*secret.Bytes, error) {
	if seed == nil || !seed.IsAlive() {
		return nil, fmt.Errorf("site seed is nil or destroyed: %w", ErrInvalidArgument)
	}

	raw := seed.Expose()
	tmpl, err := Select(raw, tier)
	if err != nil {
		return nil, err
	}
	if len(raw) < len(tmpl)+1 {
		return nil, fmt.Errorf("site seed has %d bytes, template %q needs %d: %w",
			len(raw), tmpl, len(tmpl)+1, ErrInvalidArgument)
	}

	out := make([]byte, len(tmpl))
	for i := range len(tmpl) {
		alphabet := Alphabet(tmpl[i])
		out[i] = alphabet[int(raw[i+1])%len(alphabet)]
	}

	return secret.New(out), nil
}
