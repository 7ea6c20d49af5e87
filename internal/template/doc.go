// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package template turns a site seed into a printable password.
//
// A [Tier] names a fixed, ordered list of templates. Each template is a
// string of character-class codes; each code selects an alphabet from the
// class map. The first seed byte picks the template, every following byte
// picks one character. The tables in this package are part of the
// compatibility contract: editing them changes every password ever
// generated.
package template
