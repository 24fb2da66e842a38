// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubs

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/labpubs/pkg/types"
)

// FormatTable writes the list as a human-readable table to w.
func FormatTable(pubs []types.Publication, w io.Writer) {
	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %s\n", "Year", "Title", "Authors", "Venue")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, p := range pubs {
		fmt.Fprintf(w, "%-4s  %-60s  %-24s  %s\n",
			p.Year, truncate(p.Title, 60), formatAuthors(p.Authors), truncate(p.Venue, 30))
	}

	fmt.Fprintf(w, "\n%d publications\n", len(pubs))
}

// FormatJSON writes the list as indented JSON to w.
func FormatJSON(pubs []types.Publication, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pubs)
}

// FormatYAML writes the list as YAML to w.
func FormatYAML(pubs []types.Publication, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(pubs)
}

// FormatBibTeX writes the reconstructed BibTeX entries to w, blank-line
// separated, for pasting into a reference manager.
func FormatBibTeX(pubs []types.Publication, w io.Writer) {
	for i, p := range pubs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, p.BibTeX)
	}
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 18) + " et al."
	}
}

// truncate shortens s to at most max runes. The cut lands on a rune
// boundary so decoded names like "Erdős" never yield invalid UTF-8.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
