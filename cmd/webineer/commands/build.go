package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/diamondcougar10/Webineer/internal/generator"
	"github.com/diamondcougar10/Webineer/internal/history"
	"github.com/diamondcougar10/Webineer/internal/logfields"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Project     string `short:"p" help:"Project file (default: the only .siteproj in the working directory)"`
	Output      string `short:"o" help:"Output directory (default: project output_dir, then config)"`
	TemplateDir string `name:"template-dir" help:"Directory with base.html.tmpl (default: the built-in template)"`
}

func (b *BuildCmd) Run(g *Global) error {
	path, err := resolveProjectPath(b.Project)
	if err != nil {
		return err
	}
	project, err := loadProject(path)
	if err != nil {
		return err
	}

	outputDir := b.Output
	if outputDir == "" {
		outputDir = project.OutputDir
	}
	if outputDir == "" {
		outputDir = g.Config.OutputDir
	}
	templateDir := b.TemplateDir
	if templateDir == "" {
		templateDir = g.Config.TemplateDir
	}

	store, err := openHistory(g.Config)
	if err != nil {
		return err
	}
	defer closeHistory(store)

	buildID := uuid.NewString()
	slog.Info("Starting build",
		logfields.Project(project.Name),
		logfields.Output(outputDir),
		logfields.BuildID(buildID))

	start := time.Now()
	if templateDir != "" {
		err = generator.Render(project, outputDir, templateDir)
	} else {
		err = generator.RenderBuiltin(project, outputDir)
	}
	durationMS := float64(time.Since(start).Milliseconds())

	if store != nil {
		record := history.RenderRecord{
			Project:    project.Name,
			OutputDir:  outputDir,
			Pages:      len(project.Pages),
			DurationMS: durationMS,
			Success:    err == nil,
		}
		if err != nil {
			record.Error = err.Error()
		}
		if appendErr := history.AppendRender(context.Background(), store, buildID, record); appendErr != nil {
			slog.Warn("Failed to record build history", logfields.Error(appendErr))
		}
	}
	if err != nil {
		return err
	}

	slog.Info("Build completed",
		logfields.Project(project.Name),
		logfields.Count(len(project.Pages)),
		logfields.DurationMS(durationMS))
	fmt.Printf("Rendered %d pages to %s\n", len(project.Pages), outputDir)
	return nil
}
