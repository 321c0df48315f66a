// Package generator materializes a site.Project into a directory of static
// files: one standalone HTML document per page plus the shared stylesheet
// and any bundled assets. Rendering is deterministic: the same project and
// template always produce byte-identical output.
package generator

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/diamondcougar10/Webineer/internal/errors"
	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/site"
)

// TemplateName is the page template the template directory must contain.
const TemplateName = "base.html.tmpl"

// StylesheetPath is where the shared stylesheet lands relative to the output
// root, and the relative href every page links to.
const StylesheetPath = "assets/css/style.css"

// NavEntry is one entry in the global site navigation.
type NavEntry struct {
	Filename string
	Title    string
}

// pageContext is the data a page template is evaluated against.
type pageContext struct {
	SiteName       string
	Title          string
	Pages          []NavEntry
	Content        template.HTML // author content is trusted, inserted unescaped
	StylesheetPath string
}

// assetKindDirs maps an asset kind to its subdirectory under assets/.
// Unknown kinds land in "files".
var assetKindDirs = map[string]string{
	"images": "images",
	"fonts":  "fonts",
	"media":  "media",
	"js":     "js",
}

// Render writes the whole site below outputDir using the page template found
// in templateDir. The output directory is created if absent; files from
// earlier renders are overwritten but never cleaned up. On partial failure,
// files already written stay on disk; re-running the render retries the full
// set.
func Render(project *site.Project, outputDir, templateDir string) error {
	tpl, err := loadTemplate(templateDir)
	if err != nil {
		return err
	}
	return renderWith(project, outputDir, tpl)
}

// RenderBuiltin renders with the embedded default template instead of an
// on-disk template directory.
func RenderBuiltin(project *site.Project, outputDir string) error {
	tpl, err := builtinTemplate()
	if err != nil {
		return err
	}
	return renderWith(project, outputDir, tpl)
}

func renderWith(project *site.Project, outputDir string, tpl *template.Template) error {
	cssDir := filepath.Join(outputDir, "assets", "css")
	if err := os.MkdirAll(cssDir, 0o750); err != nil {
		return errors.IOWriteError(err, cssDir)
	}
	cssPath := filepath.Join(cssDir, "style.css")
	if err := os.WriteFile(cssPath, []byte(project.Css), 0o644); err != nil {
		return errors.IOWriteError(err, cssPath)
	}

	if err := writeAssets(project, outputDir); err != nil {
		return err
	}

	nav := make([]NavEntry, 0, len(project.Pages))
	for _, page := range project.Pages {
		nav = append(nav, NavEntry{Filename: page.Filename, Title: page.Title})
	}

	for _, page := range project.Pages {
		var buf bytes.Buffer
		ctx := pageContext{
			SiteName:       project.Name,
			Title:          page.Title,
			Pages:          nav,
			Content:        template.HTML(page.Html),
			StylesheetPath: StylesheetPath,
		}
		if err := tpl.Execute(&buf, ctx); err != nil {
			return errors.RenderError(err, page.Filename)
		}
		pagePath := filepath.Join(outputDir, page.Filename)
		if err := os.WriteFile(pagePath, buf.Bytes(), 0o644); err != nil {
			return errors.IOWriteError(err, pagePath)
		}
	}

	slog.Info("Rendered site",
		logfields.Project(project.Name),
		logfields.Output(outputDir),
		logfields.Count(len(project.Pages)))
	return nil
}

// writeAssets decodes and writes the project's bundled assets below
// outputDir/assets. Assets with empty or undecodable payloads are skipped,
// mirroring the permissive project file handling.
func writeAssets(project *site.Project, outputDir string) error {
	for _, asset := range project.Assets {
		if asset.DataBase64 == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(asset.DataBase64)
		if err != nil {
			slog.Warn("Skipping undecodable asset", slog.String("asset", asset.Name), logfields.Error(err))
			continue
		}

		kindDir, ok := assetKindDirs[asset.Kind]
		if !ok {
			kindDir = "files"
		}
		destDir := filepath.Join(outputDir, "assets", kindDir)
		if err := os.MkdirAll(destDir, 0o750); err != nil {
			return errors.IOWriteError(err, destDir)
		}
		// Asset names are flat; strip any path components so an asset can
		// never escape the assets tree.
		destPath := filepath.Join(destDir, filepath.Base(asset.Name))
		if err := os.WriteFile(destPath, data, 0o644); err != nil {
			return errors.IOWriteError(err, destPath)
		}
	}
	return nil
}

// AssetKindDir returns the subdirectory under assets/ where an asset of the
// given kind is emitted.
func AssetKindDir(kind string) string {
	if dir, ok := assetKindDirs[kind]; ok {
		return dir
	}
	return "files"
}

func loadTemplate(templateDir string) (*template.Template, error) {
	path := filepath.Join(templateDir, TemplateName)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.TemplateNotFound(err, path)
	}
	tpl, err := template.New(TemplateName).Option("missingkey=error").ParseFiles(path)
	if err != nil {
		return nil, errors.RenderError(err, TemplateName)
	}
	return tpl, nil
}
