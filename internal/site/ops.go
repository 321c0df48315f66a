package site

import (
	"fmt"

	"github.com/diamondcougar10/Webineer/internal/errors"
)

// NewProject creates a fresh project with one seeded home page and the
// default stylesheet.
func NewProject(name string) *Project {
	return &Project{
		Name:    name,
		Css:     DefaultCss,
		Version: SchemaVersion,
		Pages: []Page{
			{Filename: HomePageFilename, Title: "Home", Html: DefaultIndexHtml},
		},
	}
}

// AddPage appends a new page derived from the given title. The filename is
// produced by the slug policy and is unique among the current pages, so the
// operation cannot fail. The new page is returned for the caller to edit.
func (p *Project) AddPage(title string) *Page {
	page := Page{
		Filename: p.UniqueFilename(title),
		Title:    title,
		Html:     fmt.Sprintf("<h2>%s</h2>\n<p>New page.</p>", title),
	}
	p.Pages = append(p.Pages, page)
	return &p.Pages[len(p.Pages)-1]
}

// AddExistingPage appends a fully-formed page (used by the import pipeline
// when the caller has already chosen a filename). Fails with
// DuplicateFilename if the filename is taken.
func (p *Project) AddExistingPage(page Page) error {
	if p.HasPage(page.Filename) {
		return errors.DuplicateFilename(page.Filename)
	}
	p.Pages = append(p.Pages, page)
	return nil
}

// ReplacePage overwrites the page with the same filename in place,
// preserving navigation order. Fails with PageNotFound if absent.
func (p *Project) ReplacePage(page Page) error {
	i := p.pageIndex(page.Filename)
	if i < 0 {
		return errors.PageNotFound(page.Filename)
	}
	p.Pages[i] = page
	return nil
}

// RemovePage removes the page with the given filename. The home page is
// protected: removing index.html fails with CannotRemoveHomePage and leaves
// the project unchanged.
func (p *Project) RemovePage(filename string) error {
	if filename == HomePageFilename {
		return errors.CannotRemoveHomePage()
	}
	i := p.pageIndex(filename)
	if i < 0 {
		return errors.PageNotFound(filename)
	}
	p.Pages = append(p.Pages[:i], p.Pages[i+1:]...)
	return nil
}

// InvariantViolations reports structural problems a permissively loaded
// project may carry. Callers surface these as warnings; the model never
// auto-repairs.
func (p *Project) InvariantViolations() []string {
	var violations []string
	if len(p.Pages) == 0 {
		violations = append(violations, "project has no pages")
	}
	homeCount := 0
	seen := make(map[string]struct{}, len(p.Pages))
	for _, page := range p.Pages {
		if page.Filename == HomePageFilename {
			homeCount++
		}
		if _, dup := seen[page.Filename]; dup {
			violations = append(violations, fmt.Sprintf("duplicate page filename %q", page.Filename))
		}
		seen[page.Filename] = struct{}{}
	}
	if len(p.Pages) > 0 && homeCount == 0 {
		violations = append(violations, "project has no index.html home page")
	}
	if homeCount > 1 {
		violations = append(violations, "project has more than one index.html page")
	}
	return violations
}
