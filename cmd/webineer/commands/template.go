package commands

import (
	"fmt"
	"path/filepath"

	"github.com/diamondcougar10/Webineer/internal/generator"
)

// TemplateCmd implements the 'template' command. It writes the built-in page
// template to a directory so it can be edited and used with --template-dir.
type TemplateCmd struct {
	Dir string `arg:"" optional:"" help:"Directory to write the template into" default:"./templates"`
}

func (t *TemplateCmd) Run(_ *Global) error {
	if err := generator.WriteBuiltinTemplate(t.Dir); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", filepath.Join(t.Dir, generator.TemplateName))
	return nil
}
