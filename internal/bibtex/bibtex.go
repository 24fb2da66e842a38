// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex parses the BibTeX subset that DBLP emits: entries of the
// form @type{key, name = value, ...} with braced, quoted, or bare field
// values and arbitrarily nested braces inside values.
//
// The parser is a small recursive descent over the document. It never fails
// the whole document: a malformed entry is skipped and scanning resumes at
// the next "@". Field values are kept verbatim; escape decoding is the
// caller's concern.
package bibtex

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one record of a BibTeX document.
type Entry struct {
	// Type is the entry type, lower-cased (e.g. "article", "inproceedings").
	Type string

	// Key is the citation key, verbatim.
	Key string

	// Fields maps lower-cased field names to their raw, undecoded values.
	Fields map[string]string

	// Names lists the field names in parsed order. String renders fields in
	// this order so a reconstructed entry reads like the original.
	Names []string
}

// Field returns the raw value of the named field, or "" when absent.
// Lookup is case-insensitive.
func (e Entry) Field(name string) string {
	return e.Fields[strings.ToLower(name)]
}

// String reconstructs a normalized BibTeX rendition of the entry.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", e.Type, e.Key)
	for _, name := range e.ordered() {
		fmt.Fprintf(&b, "  %s = {%s},\n", name, e.Fields[name])
	}
	out := strings.TrimSuffix(b.String(), ",\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + "}\n"
}

func (e Entry) ordered() []string {
	if len(e.Names) > 0 {
		return e.Names
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse splits src into entries. Malformed entries are dropped, not
// reported; an unparsable document yields an empty slice.
func Parse(src string) []Entry {
	p := parser{src: src}
	var entries []Entry
	for p.seekAt() {
		at := p.pos
		p.pos++ // consume '@'
		if e, ok := p.entry(); ok {
			entries = append(entries, e)
			continue
		}
		// Malformed entry: rescan from just after its '@' so an entry the
		// failed scan ran over is still found.
		p.pos = at + 1
	}
	return entries
}

type parser struct {
	src string
	pos int
}

// seekAt advances to the next '@' between entries. Lines starting with '%'
// are comments there and are skipped wholesale.
func (p *parser) seekAt() bool {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '%':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case '@':
			return true
		default:
			p.pos++
		}
	}
	return false
}

func (p *parser) entry() (Entry, bool) {
	typ := strings.ToLower(p.ident())
	if typ == "" {
		return Entry{}, false
	}
	p.ws()
	if !p.consume('{') {
		return Entry{}, false
	}
	p.ws()

	key, delim := p.untilAny(",}")
	key = strings.TrimSpace(key)
	if delim == 0 || key == "" {
		return Entry{}, false
	}
	e := Entry{Type: typ, Key: key, Fields: make(map[string]string)}
	if delim == '}' {
		return e, true // entry with no fields
	}

	for {
		p.ws()
		if p.consume('}') {
			return e, true
		}
		name := strings.ToLower(p.ident())
		if name == "" {
			return Entry{}, false
		}
		p.ws()
		if !p.consume('=') {
			return Entry{}, false
		}
		p.ws()
		val, ok := p.value()
		if !ok {
			return Entry{}, false
		}
		if _, dup := e.Fields[name]; !dup {
			e.Names = append(e.Names, name)
		}
		e.Fields[name] = val
		p.ws()
		p.consume(',')
	}
}

// value reads a braced, quoted, or bare field value. Braced values track
// nesting depth; a backslash escapes the next byte in either quoted or
// braced form.
func (p *parser) value() (string, bool) {
	if p.pos >= len(p.src) {
		return "", false
	}
	switch p.src[p.pos] {
	case '{':
		p.pos++
		start := p.pos
		depth := 0
		for p.pos < len(p.src) {
			switch p.src[p.pos] {
			case '\\':
				p.pos++ // skip the escaped byte
			case '{':
				depth++
			case '}':
				if depth == 0 {
					val := p.src[start:p.pos]
					p.pos++
					return val, true
				}
				depth--
			}
			p.pos++
		}
		return "", false
	case '"':
		p.pos++
		start := p.pos
		for p.pos < len(p.src) {
			switch p.src[p.pos] {
			case '\\':
				p.pos++
			case '"':
				val := p.src[start:p.pos]
				p.pos++
				return val, true
			}
			p.pos++
		}
		return "", false
	default:
		// Bare value (e.g. year = 2014) runs to the next delimiter.
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != '}' {
			p.pos++
		}
		val := strings.TrimSpace(p.src[start:p.pos])
		if val == "" {
			return "", false
		}
		return val, true
	}
}

// ident reads an entry type or field name: letters, digits, '_' and '-'.
func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && isIdent(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isIdent(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '-'
}

func (p *parser) ws() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// untilAny reads up to the first byte in set, consumes it, and returns the
// text before it together with the delimiter found. A zero delimiter means
// the input ended first.
func (p *parser) untilAny(set string) (string, byte) {
	start := p.pos
	for p.pos < len(p.src) {
		if c := p.src[p.pos]; strings.IndexByte(set, c) >= 0 {
			val := p.src[start:p.pos]
			p.pos++
			return val, c
		}
		p.pos++
	}
	return p.src[start:], 0
}
