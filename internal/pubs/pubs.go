// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubs builds the lab website's publication list: it maps parsed
// BibTeX entries to Publications, applies the list's filtering rules, and
// fetches and caches the remote bibliography through Service.
package pubs

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/labpubs/internal/bibtex"
	"github.com/pdiddy/labpubs/internal/latex"
	"github.com/pdiddy/labpubs/pkg/types"
)

// preprintMarker flags CoRR (arXiv) entries, which DBLP files under the
// CoRR journal and under journals/corr keys. Checked against both the venue
// text and the citation key; the substring heuristic mirrors DBLP's naming
// and is kept as observed.
const preprintMarker = "corr"

// venueFields is the fallback chain for the venue field: first present wins.
var venueFields = []string{"journal", "booktitle", "school"}

// authorSep splits the author field on " and ", case-insensitive and
// tolerant of extra whitespace.
var authorSep = regexp.MustCompile(`(?i)\s+and\s+`)

// FromEntries converts parsed BibTeX entries into Publications, preserving
// document order. Entries from a preprint repository, or whose year is
// missing, non-numeric, or below minYear, are dropped entirely.
func FromEntries(entries []bibtex.Entry, minYear int) []types.Publication {
	pubs := make([]types.Publication, 0, len(entries))
	for _, e := range entries {
		if p, ok := fromEntry(e, minYear); ok {
			pubs = append(pubs, p)
		}
	}
	return pubs
}

func fromEntry(e bibtex.Entry, minYear int) (types.Publication, bool) {
	venue := rawVenue(e)
	if isPreprint(e.Key, venue) {
		return types.Publication{}, false
	}

	year := strings.TrimSpace(e.Field("year"))
	n, err := strconv.Atoi(year)
	if err != nil || n < minYear {
		return types.Publication{}, false
	}

	return types.Publication{
		Type:    e.Type,
		Key:     e.Key,
		Title:   latex.Decode(e.Field("title")),
		Authors: splitAuthors(e.Field("author")),
		Year:    year,
		Venue:   latex.Decode(venue),
		URL:     decodeLink(e.Field("url")),
		DOI:     decodeLink(e.Field("doi")),
		BibTeX:  e.String(),
	}, true
}

// Sort orders pubs by year descending. The sort is stable, so entries from
// the same year keep their parse order.
func Sort(pubs []types.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		return pubs[i].Year > pubs[j].Year
	})
}

// rawVenue returns the undecoded venue through the journal, booktitle,
// school fallback chain.
func rawVenue(e bibtex.Entry) string {
	for _, f := range venueFields {
		if v := e.Field(f); v != "" {
			return v
		}
	}
	return ""
}

func isPreprint(key, venue string) bool {
	return strings.Contains(strings.ToLower(venue), preprintMarker) ||
		strings.Contains(strings.ToLower(key), preprintMarker)
}

// splitAuthors splits the raw author field, decodes each name, and drops
// empty fragments left by malformed separators.
func splitAuthors(raw string) []string {
	var authors []string
	for _, part := range authorSep.Split(raw, -1) {
		if name := latex.Decode(part); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// decodeLink handles the doi and url fields. A value that already is a URL
// is preserved verbatim, since LaTeX escaping rules do not apply to URLs;
// anything else is decoded like ordinary text.
func decodeLink(raw string) string {
	v := strings.TrimSpace(raw)
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return latex.Decode(v)
}
