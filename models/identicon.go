// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// IdenticonColor is an index into the fixed identicon palette. Valid values
// are 1 through 7.
type IdenticonColor uint8

// Identicon palette, in the order the derivation maps to.
const (
	ColorRed IdenticonColor = iota + 1
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// String returns the palette name of c, or "unknown" when c is out of range.
func (c IdenticonColor) String() string {
	if c < ColorRed || c > ColorWhite {
		return "unknown"
	}
	return colorNames[c]
}

// Valid reports whether c is inside the palette.
func (c IdenticonColor) Valid() bool {
	return c >= ColorRed && c <= ColorWhite
}

// Identicon is the visual fingerprint of a master password + user name pair.
// It reveals nothing about the password and is safe to display and log.
type Identicon struct {
	LeftArm   string         `json:"left_arm"`
	Body      string         `json:"body"`
	RightArm  string         `json:"right_arm"`
	Accessory string         `json:"accessory"`
	Color     IdenticonColor `json:"color"`
}

// String renders the glyphs in display order, e.g. "╔░╝⌚".
func (i Identicon) String() string {
	var b strings.Builder
	b.WriteString(i.LeftArm)
	b.WriteString(i.Body)
	b.WriteString(i.RightArm)
	b.WriteString(i.Accessory)
	return b.String()
}
