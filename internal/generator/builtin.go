package generator

import (
	"embed"
	"html/template"

	"github.com/diamondcougar10/Webineer/internal/errors"
)

//go:embed templates/base.html.tmpl
var builtinTemplates embed.FS

// builtinTemplate parses the embedded default page template. It is used when
// the caller does not supply a template directory.
func builtinTemplate() (*template.Template, error) {
	tpl, err := template.New(TemplateName).Option("missingkey=error").
		ParseFS(builtinTemplates, "templates/"+TemplateName)
	if err != nil {
		return nil, errors.RenderError(err, TemplateName)
	}
	return tpl, nil
}

// WriteBuiltinTemplate copies the embedded default template into dir so a
// user can start customizing it.
func WriteBuiltinTemplate(dir string) error {
	data, err := builtinTemplates.ReadFile("templates/" + TemplateName)
	if err != nil {
		return errors.TemplateNotFound(err, "embedded:"+TemplateName)
	}
	return writeTemplateFile(dir, data)
}
