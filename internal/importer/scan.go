package importer

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// candidate is a file selected for import, before conversion.
type candidate struct {
	path    string // absolute source path
	relPath string // slash-separated path relative to the scan root
	ext     string // lowercase extension
}

var pageExtensions = map[string]struct{}{
	".html": {}, ".htm": {}, ".md": {}, ".markdown": {}, ".txt": {},
}

// scan walks root and splits eligible files into page, css, and asset
// candidates. Hidden files and directories are skipped when IgnoreHidden is
// set; oversized files produce a warning and are skipped.
func scan(root string, opts Options, result *Result) (pages, css, assets []candidate, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if opts.IgnoreHidden && strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		result.FilesScanned++
		ext := strings.ToLower(filepath.Ext(name))
		if !opts.allowed(ext) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		if info.Size() > MaxFileSize {
			result.warnf("skipping %s: file exceeds %d bytes", name, MaxFileSize)
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		c := candidate{path: path, relPath: filepath.ToSlash(rel), ext: ext}

		switch {
		case isPageExt(ext):
			pages = append(pages, c)
		case ext == ".css":
			css = append(css, c)
		default:
			assets = append(assets, c)
		}
		return nil
	})
	return pages, css, assets, err
}

// scanSingle classifies one file the same way scan does for a tree.
func scanSingle(path string, opts Options, result *Result) (pages, css, assets []candidate) {
	result.FilesScanned++
	ext := strings.ToLower(filepath.Ext(path))
	if !opts.allowed(ext) {
		result.warnf("skipping %s: extension not allowed", filepath.Base(path))
		return nil, nil, nil
	}
	c := candidate{path: path, relPath: filepath.Base(path), ext: ext}
	switch {
	case isPageExt(ext):
		pages = append(pages, c)
	case ext == ".css":
		css = append(css, c)
	default:
		assets = append(assets, c)
	}
	return pages, css, assets
}

func isPageExt(ext string) bool {
	_, ok := pageExtensions[ext]
	return ok
}
