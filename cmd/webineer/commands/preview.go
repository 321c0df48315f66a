package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/diamondcougar10/Webineer/internal/preview"
)

// PreviewCmd implements the 'preview' command.
type PreviewCmd struct {
	Project     string `short:"p" help:"Project file (default: the only .siteproj in the working directory)"`
	Port        int    `help:"Port to listen on (default: from config)"`
	Output      string `short:"o" help:"Directory for rendered preview output (default: from config)"`
	TemplateDir string `name:"template-dir" help:"Directory with base.html.tmpl (default: the built-in template)"`
}

func (p *PreviewCmd) Run(g *Global) error {
	path, err := resolveProjectPath(p.Project)
	if err != nil {
		return err
	}

	port := p.Port
	if port == 0 {
		port = g.Config.Preview.Port
	}
	outputDir := p.Output
	if outputDir == "" {
		outputDir = g.Config.OutputDir
	}
	templateDir := p.TemplateDir
	if templateDir == "" {
		templateDir = g.Config.TemplateDir
	}
	debounce := time.Duration(g.Config.Preview.DebounceMS) * time.Millisecond

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := preview.New(path, templateDir, outputDir, port, debounce)
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
