package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/projectfile"
	"github.com/diamondcougar10/Webineer/internal/site"
)

// NewCmd implements the 'new' command.
type NewCmd struct {
	Name  string `arg:"" help:"Name of the new site"`
	File  string `short:"f" help:"Project file to create (default: derived from the name)"`
	Force bool   `help:"Overwrite an existing project file"`
}

func (n *NewCmd) Run(_ *Global) error {
	path := n.File
	if path == "" {
		path = site.Slugify(n.Name) + projectfile.Extension
	}
	if !n.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	project := site.NewProject(n.Name)
	if err := projectfile.Save(path, project); err != nil {
		return err
	}
	slog.Info("Project created", logfields.Project(project.Name), logfields.Path(path))
	fmt.Printf("Created %s\n", path)
	return nil
}
