// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-master-password/models"
)

// ErrInvalidArgument is returned for unknown tier identifiers.
var ErrInvalidArgument = models.ErrInvalidArgument

// Tier identifies a template list. The numeric values are those exposed by
// the C ABI and must not change.
type Tier uint32

const (
	TierPin     Tier = 10
	TierBasic   Tier = 20
	TierShort   Tier = 30
	TierMedium  Tier = 40
	TierLong    Tier = 50
	TierMaximum Tier = 60
)

// Tiers lists every known tier from weakest to strongest.
var Tiers = []Tier{TierPin, TierBasic, TierShort, TierMedium, TierLong, TierMaximum}

var tierTemplates = map[Tier][]string{
	TierMaximum: {
		"anoxxxxxxxxxxxxxxxxx",
		"axxxxxxxxxxxxxxxxxno",
	},
	TierLong: {
		"CvcvnoCvcvCvcv",
		"CvcvCvcvnoCvcv",
		"CvcvCvcvCvcvno",
		"CvccnoCvcvCvcv",
		"CvccCvcvnoCvcv",
		"CvccCvcvCvcvno",
		"CvcvnoCvccCvcv",
		"CvcvCvccnoCvcv",
		"CvcvCvccCvcvno",
		"CvcvnoCvcvCvcc",
		"CvcvCvcvnoCvcc",
		"CvcvCvcvCvccno",
		"CvccnoCvccCvcv",
		"CvccCvccnoCvcv",
		"CvccCvccCvcvno",
		"CvcvnoCvccCvcc",
		"CvcvCvccnoCvcc",
		"CvcvCvccCvccno",
		"CvccnoCvcvCvcc",
		"CvccCvcvnoCvcc",
		"CvccCvcvCvccno",
	},
	TierMedium: {
		"CvcnoCvc",
		"CvcCvcno",
	},
	TierShort: {
		"Cvcn",
	},
	TierBasic: {
		"aaanaaan",
		"aannaaan",
		"aaannaaa",
	},
	TierPin: {
		"nnnn",
	},
}

var tierNames = map[Tier]string{
	TierPin:     "pin",
	TierBasic:   "basic",
	TierShort:   "short",
	TierMedium:  "medium",
	TierLong:    "long",
	TierMaximum: "maximum",
}

// tierAliases maps every accepted spelling to its tier.
var tierAliases = map[string]Tier{
	"pin": TierPin, "i": TierPin,
	"basic": TierBasic, "b": TierBasic,
	"short": TierShort, "s": TierShort,
	"medium": TierMedium, "m": TierMedium,
	"long": TierLong, "l": TierLong,
	"maximum": TierMaximum, "x": TierMaximum,
}

// String returns the canonical lowercase name of t.
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", uint32(t))
}

// Valid reports whether t is one of the six known tiers.
func (t Tier) Valid() bool {
	_, ok := tierTemplates[t]
	return ok
}

// Templates returns a copy of the template list of t.
func (t Tier) Templates() ([]string, error) {
	templates, ok := tierTemplates[t]
	if !ok {
		return nil, fmt.Errorf("unknown template tier %d: %w", uint32(t), ErrInvalidArgument)
	}
	return append([]string(nil), templates...), nil
}

// ParseTier resolves a tier from its name ("long"), its one-letter alias
// ("l") or its numeric identifier ("50"). Matching is case-insensitive.
func ParseTier(s string) (Tier, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if tier, ok := tierAliases[key]; ok {
		return tier, nil
	}

	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		if tier := Tier(id); tier.Valid() {
			return tier, nil
		}
	}

	return 0, fmt.Errorf("unknown template tier %q: %w", s, ErrInvalidArgument)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown template tier %d: %w", uint32(t), ErrInvalidArgument)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], so a Tier can be used
// directly as an env, flag or JSON value.
func (t *Tier) UnmarshalText(text []byte) error {
	tier, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = tier
	return nil
}
