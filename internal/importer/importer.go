package importer

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/diamondcougar10/Webineer/internal/errors"
	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/site"
	"github.com/diamondcougar10/Webineer/internal/workspace"
)

// importedPage is a page candidate after conversion and filename assignment.
type importedPage struct {
	relPath  string
	title    string
	body     string
	filename string
	replace  bool // true when an existing page is overwritten in place
}

// ImportInto brings the content behind source (folder, zip archive, single
// file, or git URL) into the project. The project is mutated in place; the
// returned Result lists per-file warnings and errors that did not abort the
// run. A nil error with non-empty Result.Errors means a partial import.
func ImportInto(project *site.Project, source string, opts Options) (*Result, error) {
	result := &Result{}
	srcType := SniffSourceType(source)
	slog.Info("Importing content", logfields.Source(source), slog.String("type", string(srcType)))

	root := source
	var staging *workspace.Manager
	switch srcType {
	case SourceZip, SourceGit:
		staging = workspace.NewManager("")
		if err := staging.Create(); err != nil {
			return nil, errors.ImportError(err, source)
		}
		defer func() { _ = staging.Cleanup() }()

		stageDir, err := staging.CreateSubdir("content")
		if err != nil {
			return nil, errors.ImportError(err, source)
		}
		if srcType == SourceZip {
			err = extractZip(source, stageDir)
		} else {
			err = cloneRepository(source, stageDir)
		}
		if err != nil {
			return nil, errors.ImportError(err, source)
		}
		root = stageDir
	case SourceFile:
		if _, err := os.Stat(source); err != nil {
			return nil, errors.ImportError(err, source)
		}
	}

	var pageCands, cssCands, assetCands []candidate
	if srcType == SourceFile {
		pageCands, cssCands, assetCands = scanSingle(root, opts, result)
	} else {
		var err error
		pageCands, cssCands, assetCands, err = scan(root, opts, result)
		if err != nil {
			return nil, errors.ImportError(err, source)
		}
	}

	assetMapping := importAssets(project, assetCands, result)
	pages := convertPages(pageCands, opts, result)
	pages, pageMapping := assignFilenames(project, pages, opts, result)

	// Merge both mappings so page links and asset references rewrite in one
	// pass over each body.
	mapping := make(map[string]string, len(assetMapping)+len(pageMapping))
	for from, to := range assetMapping {
		mapping[from] = to
	}
	for from, to := range pageMapping {
		mapping[from] = to
	}

	for _, page := range pages {
		body := page.body
		if opts.RewriteLinks {
			rewritten, err := rewriteRefs(body, page.relPath, mapping)
			if err != nil {
				result.errorf("rewrite links in %s: %v", page.relPath, err)
			} else {
				body = rewritten
			}
		}
		applied := site.Page{Filename: page.filename, Title: page.title, Html: body}
		var err error
		if page.replace {
			err = project.ReplacePage(applied)
		} else {
			err = project.AddExistingPage(applied)
		}
		if err != nil {
			result.errorf("add page %s: %v", page.filename, err)
			continue
		}
		result.PagesImported++
	}

	mergeCss(project, cssCands, opts, result)

	slog.Info("Import finished",
		logfields.Source(source),
		slog.Int("pages", result.PagesImported),
		slog.Int("assets", result.AssetsCopied),
		slog.Int("css_files", result.CssFilesMerged),
		slog.Int("errors", len(result.Errors)))
	return result, nil
}

// convertPages turns page candidates into HTML fragments with titles.
// Files that fail to read or convert are reported and skipped.
func convertPages(cands []candidate, opts Options, result *Result) []*importedPage {
	pages := make([]*importedPage, 0, len(cands))
	for _, c := range cands {
		content, err := os.ReadFile(c.path)
		if err != nil {
			result.errorf("read %s: %v", c.relPath, err)
			continue
		}

		fallback := titleFromPath(c.relPath)
		var title, body string
		switch c.ext {
		case ".html", ".htm":
			title, body, err = extractHTML(content, fallback)
		case ".md", ".markdown":
			title, body, err = convertMarkdown(content, fallback)
		default: // .txt
			title, body = fallback, wrapText(string(content), opts.WrapTextParagraphs)
		}
		if err != nil {
			result.errorf("convert %s: %v", c.relPath, err)
			continue
		}
		pages = append(pages, &importedPage{relPath: c.relPath, title: title, body: body})
	}
	return pages
}

// assignFilenames chooses a target filename for every converted page,
// applying the filename strategy and the conflict policy. It returns the
// pages that survived the conflict policy plus the source-relative-path to
// new-filename mapping used for link rewriting.
func assignFilenames(project *site.Project, pages []*importedPage, opts Options, result *Result) ([]*importedPage, map[string]string) {
	mapping := make(map[string]string, len(pages))

	taken := make(map[string]struct{}, len(project.Pages))
	for _, existing := range project.Pages {
		taken[existing.Filename] = struct{}{}
	}

	kept := pages[:0]
	for _, page := range pages {
		// An imported index page takes over the home page when requested.
		if opts.SetHomeToIndex && isIndexSource(page.relPath) && project.HasPage(site.HomePageFilename) {
			page.filename = site.HomePageFilename
			page.replace = true
			mapping[page.relPath] = page.filename
			kept = append(kept, page)
			continue
		}

		base := baseFilename(page, opts)
		_, conflict := taken[base]
		switch {
		case !conflict:
			page.filename = base
		case opts.ConflictPolicy == ConflictOverwrite && project.HasPage(base):
			page.filename = base
			page.replace = true
		case opts.ConflictPolicy == ConflictSkip:
			result.warnf("skipping %s: page %s already exists", page.relPath, base)
			continue
		case opts.FilenameStrategy == StrategyPrefixCollisions:
			page.filename = uniquePageFilename("imported-"+strings.TrimSuffix(base, ".html"), taken)
		default: // keep-both
			page.filename = uniquePageFilename(strings.TrimSuffix(base, ".html"), taken)
		}

		taken[page.filename] = struct{}{}
		mapping[page.relPath] = page.filename
		kept = append(kept, page)
	}
	return kept, mapping
}

// baseFilename computes the pre-conflict filename for a page per strategy.
func baseFilename(page *importedPage, opts Options) string {
	switch opts.FilenameStrategy {
	case StrategyKeep, StrategyPrefixCollisions:
		flattened := strings.ReplaceAll(strings.TrimSuffix(page.relPath, path.Ext(page.relPath)), "/", "-")
		return flattened + ".html"
	default: // slugify
		return site.Slugify(page.title) + ".html"
	}
}

func uniquePageFilename(stem string, taken map[string]struct{}) string {
	candidate := stem + ".html"
	for n := 1; ; n++ {
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d.html", stem, n)
	}
}

// isIndexSource reports whether a source file is an index document.
func isIndexSource(relPath string) bool {
	stem := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
	return strings.EqualFold(stem, "index")
}

// titleFromPath derives a fallback title from a source path: the basename
// without extension, separators spaced, title-cased.
func titleFromPath(relPath string) string {
	stem := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	words := strings.Fields(stem)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	if len(words) == 0 {
		return "Imported Page"
	}
	return strings.Join(words, " ")
}

// mergeCss folds imported stylesheets into the project stylesheet according
// to the merge policy.
func mergeCss(project *site.Project, cands []candidate, opts Options, result *Result) {
	if len(cands) == 0 {
		return
	}
	var parts []string
	for _, c := range cands {
		content, err := os.ReadFile(c.path)
		if err != nil {
			result.errorf("read stylesheet %s: %v", c.relPath, err)
			continue
		}
		parts = append(parts, fmt.Sprintf("/* imported from %s */\n%s", c.relPath, strings.TrimSpace(string(content))))
		result.CssFilesMerged++
	}
	if len(parts) == 0 {
		return
	}
	imported := strings.Join(parts, "\n\n")

	switch opts.MergeCss {
	case CssReplace:
		project.Css = imported + "\n"
	case CssPrepend:
		project.Css = imported + "\n\n" + project.Css
	default: // append
		if strings.TrimSpace(project.Css) == "" {
			project.Css = imported + "\n"
		} else {
			project.Css = strings.TrimRight(project.Css, "\n") + "\n\n" + imported + "\n"
		}
	}
}
