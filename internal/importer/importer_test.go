package importer

import (
	"archive/zip"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diamondcougar10/Webineer/internal/site"
)

// writeSourceTree lays out a small mixed content folder for import tests.
func writeSourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"about.md":        "# About Us\n\nWe make things.\n",
		"guide/intro.html": `<html><head><title>Intro Guide</title></head><body><p>Start <a href="../about.md">here</a>.</p><img src="../img/logo.png"></body></html>`,
		"notes.txt":       "First paragraph.\n\nSecond paragraph.\n",
		"theme.css":       "h1 { color: teal; }",
		"img/logo.png":    "\x89PNG fake",
		".hidden.md":      "# Secret\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func TestImportFolder(t *testing.T) {
	project := site.NewProject("Acme")
	result, err := ImportInto(project, writeSourceTree(t), DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	require.Equal(t, 3, result.PagesImported)
	require.Equal(t, 1, result.CssFilesMerged)
	require.Equal(t, 1, result.AssetsCopied)

	// Hidden files are ignored by default.
	for _, page := range project.Pages {
		require.NotEqual(t, "secret.html", page.Filename)
	}

	require.True(t, project.HasPage("about-us.html"), "markdown title should drive the slug")
	require.True(t, project.HasPage("intro-guide.html"), "html title should drive the slug")
	require.True(t, project.HasPage("notes.html"), "txt fallback title comes from the filename")
}

func TestImportConvertsMarkdownAndText(t *testing.T) {
	project := site.NewProject("Acme")
	_, err := ImportInto(project, writeSourceTree(t), DefaultOptions())
	require.NoError(t, err)

	var about, notes site.Page
	for _, page := range project.Pages {
		switch page.Filename {
		case "about-us.html":
			about = page
		case "notes.html":
			notes = page
		}
	}
	require.Contains(t, about.Html, "<h1>About Us</h1>")
	require.Contains(t, about.Html, "<p>We make things.</p>")
	require.Contains(t, notes.Html, "<p>First paragraph.</p>")
	require.Contains(t, notes.Html, "<p>Second paragraph.</p>")
}

func TestImportRewritesLinksAndAssetRefs(t *testing.T) {
	project := site.NewProject("Acme")
	_, err := ImportInto(project, writeSourceTree(t), DefaultOptions())
	require.NoError(t, err)

	var intro site.Page
	for _, page := range project.Pages {
		if page.Filename == "intro-guide.html" {
			intro = page
		}
	}
	require.Contains(t, intro.Html, `href="about-us.html"`, "page link should point at the imported filename")
	require.Contains(t, intro.Html, `src="assets/images/logo.png"`, "asset reference should point at the rendered asset path")
}

func TestImportMergesCss(t *testing.T) {
	project := site.NewProject("Acme")
	originalCss := project.Css
	_, err := ImportInto(project, writeSourceTree(t), DefaultOptions())
	require.NoError(t, err)

	require.Contains(t, project.Css, originalCss[:20], "append policy keeps existing css")
	require.Contains(t, project.Css, "h1 { color: teal; }")
}

func TestImportCssReplacePolicy(t *testing.T) {
	project := site.NewProject("Acme")
	opts := DefaultOptions()
	opts.MergeCss = CssReplace
	_, err := ImportInto(project, writeSourceTree(t), opts)
	require.NoError(t, err)

	require.NotContains(t, project.Css, ".hero")
	require.Contains(t, project.Css, "h1 { color: teal; }")
}

func TestImportEmbedsAssets(t *testing.T) {
	project := site.NewProject("Acme")
	_, err := ImportInto(project, writeSourceTree(t), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, project.Assets, 1)
	asset := project.Assets[0]
	require.Equal(t, "logo.png", asset.Name)
	require.Equal(t, "images", asset.Kind)
	decoded, err := base64.StdEncoding.DecodeString(asset.DataBase64)
	require.NoError(t, err)
	require.Equal(t, "\x89PNG fake", string(decoded))
}

func TestImportDeduplicatesAssetsByContent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.png"), []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.png"), []byte("same"), 0o600))

	project := site.NewProject("Acme")
	result, err := ImportInto(project, root, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, result.AssetsCopied)
	require.Len(t, project.Assets, 1)
}

func TestImportConflictPolicies(t *testing.T) {
	newSource := func() string {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "about.md"), []byte("# About\n\nImported.\n"), 0o600))
		return root
	}

	t.Run("keep-both", func(t *testing.T) {
		project := site.NewProject("Acme")
		project.AddPage("About")
		result, err := ImportInto(project, newSource(), DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, 1, result.PagesImported)
		require.True(t, project.HasPage("about-1.html"))
	})

	t.Run("overwrite", func(t *testing.T) {
		project := site.NewProject("Acme")
		project.AddPage("About")
		opts := DefaultOptions()
		opts.ConflictPolicy = ConflictOverwrite
		result, err := ImportInto(project, newSource(), opts)
		require.NoError(t, err)
		require.Equal(t, 1, result.PagesImported)
		require.Len(t, project.Pages, 2)
		for _, page := range project.Pages {
			if page.Filename == "about.html" {
				require.Contains(t, page.Html, "Imported.")
			}
		}
	})

	t.Run("skip", func(t *testing.T) {
		project := site.NewProject("Acme")
		project.AddPage("About")
		before := project.Pages[1].Html
		opts := DefaultOptions()
		opts.ConflictPolicy = ConflictSkip
		result, err := ImportInto(project, newSource(), opts)
		require.NoError(t, err)
		require.Equal(t, 0, result.PagesImported)
		require.NotEmpty(t, result.Warnings)
		require.Equal(t, before, project.Pages[1].Html)
	})
}

func TestImportKeepFilenameStrategy(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "setup.md"), []byte("# Setup\n"), 0o600))

	project := site.NewProject("Acme")
	opts := DefaultOptions()
	opts.FilenameStrategy = StrategyKeep
	_, err := ImportInto(project, root, opts)
	require.NoError(t, err)
	require.True(t, project.HasPage("docs-setup.html"), "keep strategy flattens the relative path")
}

func TestImportSetHomeToIndex(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"),
		[]byte(`<html><head><title>New Home</title></head><body><p>replaced</p></body></html>`), 0o600))

	project := site.NewProject("Acme")
	_, err := ImportInto(project, root, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, project.Pages, 1)
	require.Equal(t, "index.html", project.Pages[0].Filename)
	require.Equal(t, "New Home", project.Pages[0].Title)
	require.Contains(t, project.Pages[0].Html, "<p>replaced</p>")
}

func TestImportIndexKeptAsPageWhenDisabled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"),
		[]byte(`<html><head><title>Landing</title></head><body><p>x</p></body></html>`), 0o600))

	project := site.NewProject("Acme")
	opts := DefaultOptions()
	opts.SetHomeToIndex = false
	_, err := ImportInto(project, root, opts)
	require.NoError(t, err)

	require.Len(t, project.Pages, 2)
	require.True(t, project.HasPage("landing.html"))
}

func TestImportSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.md")
	require.NoError(t, os.WriteFile(path, []byte("# FAQ\n\nQ and A.\n"), 0o600))

	project := site.NewProject("Acme")
	result, err := ImportInto(project, path, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, result.PagesImported)
	require.True(t, project.HasPage("faq.html"))
}

func TestImportZipArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "content.zip")
	file, err := os.Create(archive)
	require.NoError(t, err)
	zw := zip.NewWriter(file)
	entry, err := zw.Create("pages/team.md")
	require.NoError(t, err)
	_, err = entry.Write([]byte("# Our Team\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, file.Close())

	project := site.NewProject("Acme")
	result, err := ImportInto(project, archive, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, result.PagesImported)
	require.True(t, project.HasPage("our-team.html"))
}

func TestImportMissingSource(t *testing.T) {
	project := site.NewProject("Acme")
	_, err := ImportInto(project, filepath.Join(t.TempDir(), "nope.md"), DefaultOptions())
	require.Error(t, err)
}

func TestSniffSourceType(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		source string
		want   SourceType
	}{
		{dir, SourceFolder},
		{filepath.Join(dir, "x.zip"), SourceZip},
		{filepath.Join(dir, "x.md"), SourceFile},
		{"https://example.com/repo.git", SourceGit},
		{"git@example.com:org/repo.git", SourceGit},
	}
	for _, tc := range cases {
		if got := SniffSourceType(tc.source); got != tc.want {
			t.Errorf("SniffSourceType(%q) = %s, want %s", tc.source, got, tc.want)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"getting-started.md", "Getting Started"},
		{"docs/api_reference.html", "Api Reference"},
		{"notes.txt", "Notes"},
	}
	for _, tc := range cases {
		if got := titleFromPath(tc.in); got != tc.want {
			t.Errorf("titleFromPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
