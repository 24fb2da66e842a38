// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for labpubs: the Publication
// entity rendered on the lab website and the configuration tree consumed by
// the CLI and the fetch service.
package types

// Publication is one entry of the lab's publication list, built from a
// single DBLP BibTeX record. It is immutable after construction.
type Publication struct {
	// Type is the BibTeX entry type, verbatim (e.g. "article", "inproceedings").
	Type string `json:"type" yaml:"type"`

	// Key is the DBLP citation key (e.g. "journals/tcs/SmithJ19").
	Key string `json:"key" yaml:"key"`

	// Title is the decoded, whitespace-normalized title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the decoded author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the four-digit publication year as it appeared in the entry.
	Year string `json:"year" yaml:"year"`

	// Venue is the journal, booktitle, or school field, whichever was
	// present first in that order.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// URL is the electronic edition link, if any.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// DOI is the DOI field. Full URLs are preserved verbatim; bare DOIs are
	// decoded like any other text field.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// BibTeX is a normalized rendition of the original entry, suitable for
	// a "copy citation" button.
	BibTeX string `json:"bibtex" yaml:"bibtex"`
}
