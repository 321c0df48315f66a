package site

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diamondcougar10/Webineer/internal/errors"
)

func TestNewProjectSeedsHomePage(t *testing.T) {
	p := NewProject("Acme")
	require.Equal(t, "Acme", p.Name)
	require.Equal(t, SchemaVersion, p.Version)
	require.Len(t, p.Pages, 1)
	require.Equal(t, HomePageFilename, p.Pages[0].Filename)
	require.Equal(t, "Home", p.Pages[0].Title)
	require.NotEmpty(t, p.Pages[0].Html)
	require.Equal(t, DefaultCss, p.Css)
	require.Empty(t, p.InvariantViolations())
}

func TestAddPageAppendsInOrder(t *testing.T) {
	p := NewProject("Acme")
	page := p.AddPage("About Us")
	require.Equal(t, "about-us.html", page.Filename)
	require.Equal(t, "About Us", page.Title)
	require.Contains(t, page.Html, "About Us")
	require.Equal(t, "about-us.html", p.Pages[1].Filename)
}

func TestRemovePage(t *testing.T) {
	p := NewProject("Acme")
	p.AddPage("About")
	p.AddPage("Contact")

	require.NoError(t, p.RemovePage("about.html"))
	require.Len(t, p.Pages, 2)
	require.False(t, p.HasPage("about.html"))

	err := p.RemovePage("about.html")
	require.True(t, errors.IsKind(err, errors.KindPageNotFound), "got %v", err)
}

// RemovePage(index.html) always fails and leaves the pages unchanged.
func TestRemoveHomePageProtected(t *testing.T) {
	p := NewProject("Acme")
	p.AddPage("About")
	before := make([]Page, len(p.Pages))
	copy(before, p.Pages)

	err := p.RemovePage(HomePageFilename)
	require.True(t, errors.IsKind(err, errors.KindHomePageProtected), "got %v", err)
	require.True(t, reflect.DeepEqual(before, p.Pages), "pages changed after failed removal")
}

func TestAddExistingPageDuplicate(t *testing.T) {
	p := NewProject("Acme")
	require.NoError(t, p.AddExistingPage(Page{Filename: "faq.html", Title: "FAQ", Html: ""}))

	err := p.AddExistingPage(Page{Filename: "faq.html", Title: "Other", Html: ""})
	require.True(t, errors.IsKind(err, errors.KindDuplicateFilename), "got %v", err)
	require.Len(t, p.Pages, 2)
}

func TestReplacePage(t *testing.T) {
	p := NewProject("Acme")
	p.AddPage("About")

	require.NoError(t, p.ReplacePage(Page{Filename: "about.html", Title: "About v2", Html: "<p>new</p>"}))
	require.Equal(t, "About v2", p.Pages[1].Title)

	err := p.ReplacePage(Page{Filename: "missing.html"})
	require.True(t, errors.IsKind(err, errors.KindPageNotFound), "got %v", err)
}

func TestInvariantViolations(t *testing.T) {
	empty := &Project{Name: "x", Version: 1}
	require.Contains(t, empty.InvariantViolations(), "project has no pages")

	noHome := &Project{Name: "x", Version: 1, Pages: []Page{{Filename: "a.html"}}}
	require.Contains(t, noHome.InvariantViolations(), "project has no index.html home page")

	dup := &Project{Name: "x", Version: 1, Pages: []Page{
		{Filename: "index.html"}, {Filename: "a.html"}, {Filename: "a.html"},
	}}
	require.Contains(t, dup.InvariantViolations(), `duplicate page filename "a.html"`)
}
