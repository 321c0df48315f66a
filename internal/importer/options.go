// Package importer brings external content into a project: folders, zip
// archives, single files, or git repositories containing HTML, Markdown,
// plain text, stylesheets, and binary assets.
package importer

import "fmt"

// Filename strategies for imported pages.
const (
	StrategySlugify          = "slugify"
	StrategyKeep             = "keep"
	StrategyPrefixCollisions = "prefix-collisions"
)

// Conflict policies for pages whose filename is already taken.
const (
	ConflictKeepBoth  = "keep-both"
	ConflictOverwrite = "overwrite"
	ConflictSkip      = "skip"
)

// CSS merge policies.
const (
	CssAppend  = "append"
	CssPrepend = "prepend"
	CssReplace = "replace"
)

// MaxFileSize is the per-file safety cap (10 MiB).
const MaxFileSize = 10 * 1024 * 1024

// defaultExtensions is the set of file extensions considered for import.
var defaultExtensions = map[string]struct{}{
	".html": {}, ".htm": {}, ".md": {}, ".markdown": {}, ".txt": {},
	".css":  {},
	".png":  {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {}, ".svg": {}, ".ico": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".otf": {},
	".mp4":  {}, ".webm": {}, ".mp3": {},
	".js":   {},
}

// Options controls an import run.
type Options struct {
	FilenameStrategy   string
	ConflictPolicy     string
	MergeCss           string
	RewriteLinks       bool
	WrapTextParagraphs bool
	SetHomeToIndex     bool
	IgnoreHidden       bool
	IncludeJS          bool
	// AllowedExtensions restricts which files are scanned; nil means the
	// default set.
	AllowedExtensions map[string]struct{}
}

// DefaultOptions returns the standard import behavior.
func DefaultOptions() Options {
	return Options{
		FilenameStrategy:   StrategySlugify,
		ConflictPolicy:     ConflictKeepBoth,
		MergeCss:           CssAppend,
		RewriteLinks:       true,
		WrapTextParagraphs: true,
		SetHomeToIndex:     true,
		IgnoreHidden:       true,
		IncludeJS:          true,
	}
}

func (o Options) allowed(ext string) bool {
	if !o.IncludeJS && ext == ".js" {
		return false
	}
	if o.AllowedExtensions != nil {
		_, ok := o.AllowedExtensions[ext]
		return ok
	}
	_, ok := defaultExtensions[ext]
	return ok
}

// Result summarizes what an import run did.
type Result struct {
	FilesScanned  int
	PagesImported int
	CssFilesMerged int
	AssetsCopied  int
	Warnings      []string
	Errors        []string
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
