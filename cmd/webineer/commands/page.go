package commands

import (
	"fmt"
	"log/slog"

	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/projectfile"
	"github.com/diamondcougar10/Webineer/internal/site"
)

// AddPageCmd implements the 'add-page' command.
type AddPageCmd struct {
	Title   string `arg:"" help:"Title of the new page"`
	Project string `short:"p" help:"Project file (default: the only .siteproj in the working directory)"`
}

func (a *AddPageCmd) Run(_ *Global) error {
	path, err := resolveProjectPath(a.Project)
	if err != nil {
		return err
	}
	project, err := loadProject(path)
	if err != nil {
		return err
	}

	page := project.AddPage(a.Title)
	if err := projectfile.Save(path, project); err != nil {
		return err
	}
	slog.Info("Page added", logfields.Project(project.Name), logfields.Page(page.Filename))
	fmt.Printf("Added %s (%s)\n", page.Title, page.Filename)
	return nil
}

// RemovePageCmd implements the 'remove-page' command.
type RemovePageCmd struct {
	Filename string `arg:"" help:"Filename of the page to remove (for example about.html)"`
	Project  string `short:"p" help:"Project file (default: the only .siteproj in the working directory)"`
}

func (r *RemovePageCmd) Run(_ *Global) error {
	path, err := resolveProjectPath(r.Project)
	if err != nil {
		return err
	}
	project, err := loadProject(path)
	if err != nil {
		return err
	}

	if err := project.RemovePage(r.Filename); err != nil {
		return err
	}
	if err := projectfile.Save(path, project); err != nil {
		return err
	}
	slog.Info("Page removed", logfields.Project(project.Name), logfields.Page(r.Filename))
	fmt.Printf("Removed %s\n", r.Filename)
	return nil
}

// PagesCmd implements the 'pages' command.
type PagesCmd struct {
	Project string `short:"p" help:"Project file (default: the only .siteproj in the working directory)"`
}

func (p *PagesCmd) Run(_ *Global) error {
	path, err := resolveProjectPath(p.Project)
	if err != nil {
		return err
	}
	project, err := loadProject(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d pages)\n", project.Name, len(project.Pages))
	for _, page := range project.Pages {
		marker := "  "
		if page.Filename == site.HomePageFilename {
			marker = "* "
		}
		fmt.Printf("%s%-30s %s\n", marker, page.Filename, page.Title)
	}
	return nil
}
