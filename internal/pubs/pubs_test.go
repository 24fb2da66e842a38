package pubs

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/labpubs/internal/bibtex"
	"github.com/pdiddy/labpubs/pkg/types"
)

const minYear = 2014

func entriesOf(t *testing.T, doc string) []bibtex.Entry {
	t.Helper()
	return bibtex.Parse(doc)
}

func TestFromEntriesBasicFields(t *testing.T) {
	doc := `@article{journals/tcs/Smith19,
  author  = {Alice Smith and Bob Jones},
  title   = {A Study of {DNA} Folding},
  journal = {Theor. Comput. Sci.},
  year    = {2019},
  doi     = {10.1000/XYZ},
  url     = {https://example.org/paper}
}`
	pubs := FromEntries(entriesOf(t, doc), minYear)
	if len(pubs) != 1 {
		t.Fatalf("len(pubs) = %d, want 1", len(pubs))
	}
	p := pubs[0]
	if p.Type != "article" || p.Key != "journals/tcs/Smith19" {
		t.Errorf("type/key = %q/%q", p.Type, p.Key)
	}
	if p.Title != "A Study of DNA Folding" {
		t.Errorf("Title = %q (braces must be stripped)", p.Title)
	}
	if want := []string{"Alice Smith", "Bob Jones"}; !reflect.DeepEqual(p.Authors, want) {
		t.Errorf("Authors = %v, want %v", p.Authors, want)
	}
	if p.Year != "2019" || p.Venue != "Theor. Comput. Sci." {
		t.Errorf("year/venue = %q/%q", p.Year, p.Venue)
	}
	if !strings.Contains(p.BibTeX, "@article{journals/tcs/Smith19,") {
		t.Errorf("BibTeX rendition missing header: %q", p.BibTeX)
	}
}

func TestFromEntriesYearFilter(t *testing.T) {
	tests := []struct {
		name string
		year string
		want int
	}{
		{"below threshold", "2013", 0},
		{"at threshold", "2014", 1},
		{"above threshold", "2022", 1},
		{"missing", "", 0},
		{"non-numeric", "MMXX", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `@article{k/a, title = {T}, journal = {J}, year = {` + tt.year + `}}`
			if tt.year == "" {
				doc = `@article{k/a, title = {T}, journal = {J}}`
			}
			pubs := FromEntries(entriesOf(t, doc), minYear)
			if len(pubs) != tt.want {
				t.Errorf("len(pubs) = %d, want %d", len(pubs), tt.want)
			}
		})
	}
}

func TestFromEntriesPreprintFilter(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"corr journal", `@article{k/a, title = {T}, journal = {CoRR}, year = {2022}}`},
		{"corr key", `@article{journals/corr/abs-2201-00001, title = {T}, journal = {X}, year = {2022}}`},
		{"mixed case venue", `@article{k/a, title = {T}, journal = {CORR abs}, year = {2022}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pubs := FromEntries(entriesOf(t, tt.doc), minYear); len(pubs) != 0 {
				t.Errorf("len(pubs) = %d, want 0 (preprints are dropped, not transformed)", len(pubs))
			}
		})
	}
}

func TestFromEntriesVenueFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"journal wins", `@article{k/a, title = {T}, journal = {J}, booktitle = {B}, year = {2020}}`, "J"},
		{"booktitle next", `@inproceedings{k/b, title = {T}, booktitle = {B}, school = {S}, year = {2020}}`, "B"},
		{"school last", `@phdthesis{k/c, title = {T}, school = {S}, year = {2020}}`, "S"},
		{"none present", `@misc{k/d, title = {T}, year = {2020}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pubs := FromEntries(entriesOf(t, tt.doc), minYear)
			if len(pubs) != 1 {
				t.Fatalf("len(pubs) = %d, want 1", len(pubs))
			}
			if pubs[0].Venue != tt.want {
				t.Errorf("Venue = %q, want %q", pubs[0].Venue, tt.want)
			}
		})
	}
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two authors", "Alice Smith and Bob Jones", []string{"Alice Smith", "Bob Jones"}},
		{"case-insensitive separator", "Alice Smith AND Bob Jones", []string{"Alice Smith", "Bob Jones"}},
		{"extra whitespace", "Alice Smith  and\n Bob Jones", []string{"Alice Smith", "Bob Jones"}},
		{"accents decoded", `Jos\'{e} \'{A}lvarez and Paul Erd\H{o}s`, []string{"José Álvarez", "Paul Erdős"}},
		{"trailing separator dropped", "Alice Smith and ", []string{"Alice Smith"}},
		{"leading separator dropped", " and Bob Jones", []string{"Bob Jones"}},
		{"single author", "Cher", []string{"Cher"}},
		{"empty field", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitAuthors(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAuthors(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDOIPassthrough(t *testing.T) {
	doc := `@article{k/a, title = {T}, journal = {J}, year = {2020}, doi = {https://doi.org/10.1/xyz}}
@article{k/b, title = {T}, journal = {J}, year = {2020}, doi = {10.1/x\_yz}}`
	pubs := FromEntries(entriesOf(t, doc), minYear)
	if len(pubs) != 2 {
		t.Fatalf("len(pubs) = %d, want 2", len(pubs))
	}
	if pubs[0].DOI != "https://doi.org/10.1/xyz" {
		t.Errorf("URL-form DOI = %q, want verbatim", pubs[0].DOI)
	}
	if pubs[1].DOI != "10.1/x_yz" {
		t.Errorf("bare DOI = %q, want decoded without prefixing", pubs[1].DOI)
	}
}

func TestSortYearDescendingStable(t *testing.T) {
	doc := `@article{k/a, title = {First 2018}, journal = {J}, year = {2018}}
@article{k/b, title = {Only 2022}, journal = {J}, year = {2022}}
@article{k/c, title = {Only 2014}, journal = {J}, year = {2014}}
@article{k/d, title = {Second 2018}, journal = {J}, year = {2018}}`
	pubs := FromEntries(entriesOf(t, doc), minYear)
	Sort(pubs)

	var years []string
	for _, p := range pubs {
		years = append(years, p.Year)
	}
	if want := []string{"2022", "2018", "2018", "2014"}; !reflect.DeepEqual(years, want) {
		t.Fatalf("years = %v, want %v", years, want)
	}
	// Equal years keep parse order.
	if pubs[1].Title != "First 2018" || pubs[2].Title != "Second 2018" {
		t.Errorf("2018 order = %q, %q; want parse order", pubs[1].Title, pubs[2].Title)
	}
}

func TestFromEntriesIdempotent(t *testing.T) {
	doc := `@article{k/a, author = {A B and C D}, title = {T\"{i}tle}, journal = {J}, year = {2020}}
@inproceedings{k/b, title = {U}, booktitle = {B}, year = {2016}}`
	a := FromEntries(entriesOf(t, doc), minYear)
	b := FromEntries(entriesOf(t, doc), minYear)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two parses of the same document differ:\n%v\n%v", a, b)
	}
}

func TestFromEntriesUnparsableDocument(t *testing.T) {
	if pubs := FromEntries(entriesOf(t, "not bibtex at all"), minYear); len(pubs) != 0 {
		t.Errorf("len(pubs) = %d, want 0", len(pubs))
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var b strings.Builder
	FormatTable(nil, &b)
	if !strings.Contains(b.String(), "No publications.") {
		t.Errorf("empty table output = %q", b.String())
	}
}

func TestFormatBibTeX(t *testing.T) {
	pubs := []types.Publication{
		{BibTeX: "@article{a,\n  title = {A}\n}\n"},
		{BibTeX: "@article{b,\n  title = {B}\n}\n"},
	}
	var b strings.Builder
	FormatBibTeX(pubs, &b)
	out := b.String()
	if !strings.Contains(out, "@article{a,") || !strings.Contains(out, "@article{b,") {
		t.Errorf("output missing entries:\n%s", out)
	}
	if !strings.Contains(out, "}\n\n@article{b,") {
		t.Errorf("entries not blank-line separated:\n%s", out)
	}
}

func TestTruncateMultibyte(t *testing.T) {
	// Repeated two-byte runes put every byte offset inside a rune, so a
	// byte-indexed cut would produce invalid UTF-8.
	long := strings.Repeat("ő", 40)
	got := truncate(long, 24)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated output is not valid UTF-8: %q", got)
	}
	if want := strings.Repeat("ő", 21) + "..."; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}
	if got := truncate("short", 24); got != "short" {
		t.Errorf("short string changed: %q", got)
	}
}
