package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/diamondcougar10/Webineer/internal/history"
	"github.com/diamondcougar10/Webineer/internal/importer"
	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/projectfile"
)

// ImportCmd implements the 'import' command.
type ImportCmd struct {
	Source  string `arg:"" help:"Folder, zip archive, single file, or git URL to import"`
	Project string `short:"p" help:"Project file (default: the only .siteproj in the working directory)"`

	Strategy string `help:"Filename strategy: slugify, keep, prefix-collisions" enum:"slugify,keep,prefix-collisions" default:"slugify"`
	Conflict string `help:"Conflict policy for existing filenames: keep-both, overwrite, skip" enum:"keep-both,overwrite,skip" default:"keep-both"`
	CSS      string `name:"css" help:"Stylesheet merge policy: append, prepend, replace" enum:"append,prepend,replace" default:"append"`

	NoRewriteLinks bool `name:"no-rewrite-links" help:"Leave relative links in imported pages untouched"`
	NoWrapText     bool `name:"no-wrap-text" help:"Do not wrap plain text files in paragraphs"`
	KeepHome       bool `name:"keep-home" help:"Never replace the home page, even for an imported index file"`
	IncludeHidden  bool `name:"include-hidden" help:"Also import hidden files and directories"`
	NoJS           bool `name:"no-js" help:"Skip JavaScript files"`
}

func (i *ImportCmd) Run(g *Global) error {
	path, err := resolveProjectPath(i.Project)
	if err != nil {
		return err
	}
	project, err := loadProject(path)
	if err != nil {
		return err
	}

	opts := importer.DefaultOptions()
	opts.FilenameStrategy = i.Strategy
	opts.ConflictPolicy = i.Conflict
	opts.MergeCss = i.CSS
	opts.RewriteLinks = !i.NoRewriteLinks
	opts.WrapTextParagraphs = !i.NoWrapText
	opts.SetHomeToIndex = !i.KeepHome
	opts.IgnoreHidden = !i.IncludeHidden
	opts.IncludeJS = !i.NoJS

	buildID := uuid.NewString()
	slog.Info("Starting import",
		logfields.Project(project.Name),
		logfields.Source(i.Source),
		logfields.BuildID(buildID))

	result, err := importer.ImportInto(project, i.Source, opts)
	if err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		slog.Warn("Import warning", slog.String("warning", warning))
	}
	for _, importErr := range result.Errors {
		slog.Error("Import error", slog.String("detail", importErr))
	}

	if err := projectfile.Save(path, project); err != nil {
		return err
	}

	store, err := openHistory(g.Config)
	if err != nil {
		return err
	}
	defer closeHistory(store)
	if store != nil {
		record := history.ImportRecord{
			Project:        project.Name,
			Source:         i.Source,
			PagesImported:  result.PagesImported,
			AssetsCopied:   result.AssetsCopied,
			CssFilesMerged: result.CssFilesMerged,
			Warnings:       len(result.Warnings),
			Errors:         len(result.Errors),
		}
		if appendErr := history.AppendImport(context.Background(), store, buildID, record); appendErr != nil {
			slog.Warn("Failed to record import history", logfields.Error(appendErr))
		}
	}

	fmt.Printf("Imported %d pages, %d assets, merged %d stylesheets (%d files scanned)\n",
		result.PagesImported, result.AssetsCopied, result.CssFilesMerged, result.FilesScanned)
	return nil
}
