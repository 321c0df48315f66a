// Package commands contains the webineer CLI commands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/diamondcougar10/Webineer/internal/config"
	"github.com/diamondcougar10/Webineer/internal/history"
	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/projectfile"
	"github.com/diamondcougar10/Webineer/internal/site"
)

// Global holds shared state passed to subcommands.
type Global struct {
	Config *config.Config
}

// CLI is the root command grammar.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"webineer.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	New        NewCmd        `cmd:"" help:"Create a new site project"`
	AddPage    AddPageCmd    `cmd:"" name:"add-page" help:"Add a page to the project"`
	RemovePage RemovePageCmd `cmd:"" name:"remove-page" help:"Remove a page from the project"`
	Pages      PagesCmd      `cmd:"" help:"List the pages in the project"`
	Build      BuildCmd      `cmd:"" help:"Render the project to static HTML"`
	Import     ImportCmd     `cmd:"" help:"Import pages, styles and assets from an external source"`
	Preview    PreviewCmd    `cmd:"" help:"Serve the rendered site locally with live rebuild"`
	History    HistoryCmd    `cmd:"" help:"Show recorded build and import runs"`
	Template   TemplateCmd   `cmd:"" help:"Export the built-in page template for customization"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolveProjectPath returns the project file to operate on. An empty flag
// value means "the single .siteproj file in the working directory".
func resolveProjectPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	matches, err := filepath.Glob("*" + projectfile.Extension)
	if err != nil {
		return "", fmt.Errorf("scan working directory: %w", err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no %s file found, use --project to specify one", projectfile.Extension)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple %s files found, use --project to pick one", projectfile.Extension)
	}
}

// loadProject loads a project and logs a warning for each structural problem.
// Loading never fails on violations so a damaged project can still be fixed.
func loadProject(path string) (*site.Project, error) {
	project, err := projectfile.Load(path)
	if err != nil {
		return nil, err
	}
	for _, violation := range project.InvariantViolations() {
		slog.Warn("Project violates an invariant", logfields.Path(path), slog.String("violation", violation))
	}
	return project, nil
}

// openHistory opens the configured history store. A disabled store (empty
// path) returns nil without error; callers must handle a nil store.
func openHistory(cfg *config.Config) (history.Store, error) {
	if cfg.HistoryDB == "" {
		return nil, nil
	}
	store, err := history.NewSQLiteStore(cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return store, nil
}

func closeHistory(store history.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		slog.Warn("Failed to close history store", logfields.Error(err))
	}
}
