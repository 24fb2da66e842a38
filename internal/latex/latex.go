// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex decodes the LaTeX escape subset that DBLP emits in BibTeX
// field values into composed Unicode text. Decoding is best effort: malformed
// input is returned as-is rather than producing an error.
package latex

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxPasses bounds the brace-stripping iteration so nested constructs
// converge without risking an infinite loop on malformed input.
const maxPasses = 10

// accents maps LaTeX accent commands to Unicode combining marks. The mark is
// appended after the base letter and composed by NFC.
var accents = map[string]rune{
	"'": '́', // acute
	"`": '̀', // grave
	`"`: '̈', // umlaut
	"^": '̂', // circumflex
	"~": '̃', // tilde
	"=": '̄', // macron
	".": '̇', // dot above
	"H": '̋', // double acute
	"v": '̌', // caron
	"u": '̆', // breve
}

// letters maps argumentless letter escapes to their Unicode forms.
var letters = map[string]string{
	"ss": "ß",
	"o":  "ø",
	"O":  "Ø",
	"aa": "å",
	"AA": "Å",
	"ae": "æ",
	"AE": "Æ",
	"oe": "œ",
	"OE": "Œ",
	"l":  "ł",
	"L":  "Ł",
	"i":  "ı",
}

var (
	// Accent command with a braced letter: \'{e}, \H{o}.
	accentBraced = regexp.MustCompile("\\\\(['\"`^~=.Hvu])\\{(\\pL)\\}")
	// Symbol accents also apply to a bare letter: \'e.
	accentBare = regexp.MustCompile("\\\\(['\"`^~=.])(\\pL)")
	// Letter-named accents need a separator before a bare letter: \v c.
	accentSpaced = regexp.MustCompile(`\\([Hvu])\s+(\pL)`)
	// Cedilla, \c{c} or \c c. Only c and C have a composed form.
	cedilla = regexp.MustCompile(`\\c(?:\{([A-Za-z])\}|\s+([A-Za-z]))`)
	// \ss, \o, ... followed by a non-letter.
	letterEscape = regexp.MustCompile(`\\(ss|aa|AA|ae|AE|oe|OE|o|O|l|L|i)\b`)
	// One level of braces around content with no nested braces.
	plainGroup = regexp.MustCompile(`\{([^{}]*)\}`)
)

var literalEscapes = strings.NewReplacer(`\_`, "_", `\&`, "&", `\ `, " ")

// Decode converts DBLP's LaTeX markup in raw to plain Unicode text in NFC
// form, with runs of whitespace collapsed to a single space.
func Decode(raw string) string {
	s := raw
	for range maxPasses {
		next := decodePass(s)
		if next == s {
			break
		}
		s = next
	}
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// decodePass applies every escape rule once and strips one level of braces.
// Nested constructs resolve over successive passes.
func decodePass(s string) string {
	s = replaceAccent(accentBraced, s)
	s = replaceAccent(accentBare, s)
	s = replaceAccent(accentSpaced, s)
	s = cedilla.ReplaceAllStringFunc(s, func(m string) string {
		sub := cedilla.FindStringSubmatch(m)
		letter := sub[1] + sub[2] // only one group matches
		switch letter {
		case "c":
			return "ç"
		case "C":
			return "Ç"
		}
		return letter
	})
	s = letterEscape.ReplaceAllStringFunc(s, func(m string) string {
		return letters[m[1:]]
	})
	s = literalEscapes.Replace(s)
	s = plainGroup.ReplaceAllString(s, "$1")
	return s
}

func replaceAccent(re *regexp.Regexp, s string) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		mark, ok := accents[sub[1]]
		if !ok {
			return m
		}
		return sub[2] + string(mark)
	})
}
