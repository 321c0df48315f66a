package site

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Slugify derives a filesystem-safe slug from a page title: NFC-normalized,
// lower-cased, whitespace tokens joined with hyphens. An all-whitespace title
// slugs to "page" so a filename can always be produced.
func Slugify(title string) string {
	normalized := norm.NFC.String(title)
	tokens := strings.Fields(strings.ToLower(normalized))
	if len(tokens) == 0 {
		return "page"
	}
	return strings.Join(tokens, "-")
}

// UniqueFilename derives a page filename from a title that is guaranteed to
// be unique among the project's current pages. Collisions append -1, -2, ...
// to the slug, checked against the original candidate pattern.
//
// A title that slugs to "index" collides with the mandatory home page and
// therefore always resolves to "index-1.html" (or higher).
func (p *Project) UniqueFilename(title string) string {
	slug := Slugify(title)
	existing := make(map[string]struct{}, len(p.Pages))
	for _, page := range p.Pages {
		existing[page.Filename] = struct{}{}
	}

	candidate := slug + ".html"
	for n := 1; ; n++ {
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d.html", slug, n)
	}
}

// HasPage reports whether a page with the given filename exists.
func (p *Project) HasPage(filename string) bool {
	return p.pageIndex(filename) >= 0
}

func (p *Project) pageIndex(filename string) int {
	for i, page := range p.Pages {
		if page.Filename == filename {
			return i
		}
	}
	return -1
}
