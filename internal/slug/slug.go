// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slug turns display names into URL-safe identifiers for anchor
// links on the lab website.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and removes the combining marks,
// so "é" becomes "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a display name into a lower-case, accent-free slug with
// whitespace runs replaced by single hyphens: "José Álvarez" -> "jose-alvarez".
func Make(name string) string {
	s, _, err := transform.String(stripMarks, strings.ToLower(name))
	if err != nil {
		s = strings.ToLower(name)
	}
	return strings.Join(strings.Fields(s), "-")
}
