// Package site defines the in-memory model of a Webineer project: an ordered
// set of pages, a shared stylesheet, bundled assets, and site metadata. The
// model owns its pages exclusively; persistence and rendering only borrow a
// read reference per operation.
package site

import (
	"fmt"

	"github.com/diamondcougar10/Webineer/internal/errors"
)

// SchemaVersion is the current project file schema version. It is written on
// save and reserved for future migration; v1 has no migration logic.
const SchemaVersion = 1

// HomePageFilename is the mandatory home page every project contains.
const HomePageFilename = "index.html"

// Page is one static document within a project. Filename is the relative
// output path (unique within a project, always ending in .html). Html is the
// author-supplied body fragment and is inserted unescaped at render time.
type Page struct {
	Filename string
	Title    string
	Html     string
}

// Asset is a binary file bundled with the project, stored base64-encoded so
// the project file stays a single self-contained text document.
type Asset struct {
	Name       string
	DataBase64 string
	Kind       string // images, fonts, media, js, other
}

// Project is the complete in-memory representation of one site.
//
// Invariants (maintained by the mutation operations, not by FromMap):
//   - pages is non-empty and exactly one page has filename "index.html"
//   - page filenames are pairwise distinct
type Project struct {
	Name      string
	Pages     []Page
	Css       string
	OutputDir string // last-used export target, advisory only; "" means unset
	Version   int
	Assets    []Asset
}

// ToMap produces an order-preserving, serialization-ready mapping of the
// project. It always succeeds.
func (p *Project) ToMap() map[string]any {
	pages := make([]any, 0, len(p.Pages))
	for _, page := range p.Pages {
		pages = append(pages, map[string]any{
			"filename": page.Filename,
			"title":    page.Title,
			"html":     page.Html,
		})
	}
	assets := make([]any, 0, len(p.Assets))
	for _, asset := range p.Assets {
		assets = append(assets, map[string]any{
			"name":        asset.Name,
			"data_base64": asset.DataBase64,
			"kind":        asset.Kind,
		})
	}

	var outputDir any
	if p.OutputDir != "" {
		outputDir = p.OutputDir
	}

	return map[string]any{
		"name":       p.Name,
		"css":        p.Css,
		"output_dir": outputDir,
		"version":    p.Version,
		"pages":      pages,
		"assets":     assets,
	}
}

// FromMap reconstructs a project from a mapping, tolerating missing optional
// fields: name defaults to "My Site", css to "", output_dir to unset, version
// to 1, pages and assets to empty. It does not re-establish the non-empty /
// home-page invariant; permissive load behavior is intentional so older
// project files keep loading.
func FromMap(data map[string]any) (*Project, error) {
	p := &Project{
		Name:    "My Site",
		Version: SchemaVersion,
	}

	if name, ok := data["name"].(string); ok {
		p.Name = name
	}
	if css, ok := data["css"].(string); ok {
		p.Css = css
	}
	if outputDir, ok := data["output_dir"].(string); ok {
		p.OutputDir = outputDir
	}
	switch v := data["version"].(type) {
	case int:
		p.Version = v
	case float64: // JSON numbers decode to float64
		p.Version = int(v)
	}

	rawPages, _ := data["pages"].([]any)
	for _, raw := range rawPages {
		page, err := pageFromMap(raw)
		if err != nil {
			return nil, err
		}
		p.Pages = append(p.Pages, page)
	}

	// Assets are reconstructed permissively: malformed entries are skipped
	// rather than failing the whole load.
	rawAssets, _ := data["assets"].([]any)
	for _, raw := range rawAssets {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		asset := Asset{Name: "asset", Kind: "other"}
		if name, ok := entry["name"].(string); ok {
			asset.Name = name
		}
		if data64, ok := entry["data_base64"].(string); ok {
			asset.DataBase64 = data64
		}
		if kind, ok := entry["kind"].(string); ok {
			asset.Kind = kind
		}
		p.Assets = append(p.Assets, asset)
	}

	return p, nil
}

// pageFromMap reconstructs a single page entry. Pages are strict where the
// surrounding project is permissive: filename, title, and html are all
// required and no other keys are accepted.
func pageFromMap(raw any) (Page, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return Page{}, errors.MalformedPageData("page entry is not an object")
	}
	for key := range entry {
		switch key {
		case "filename", "title", "html":
		default:
			return Page{}, errors.MalformedPageData(fmt.Sprintf("unknown page field %q", key))
		}
	}
	filename, ok := entry["filename"].(string)
	if !ok {
		return Page{}, errors.MalformedPageData("missing page field \"filename\"")
	}
	title, ok := entry["title"].(string)
	if !ok {
		return Page{}, errors.MalformedPageData("missing page field \"title\"")
	}
	html, ok := entry["html"].(string)
	if !ok {
		return Page{}, errors.MalformedPageData("missing page field \"html\"")
	}
	return Page{Filename: filename, Title: title, Html: html}, nil
}
