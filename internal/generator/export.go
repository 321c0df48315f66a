package generator

import (
	"os"
	"path/filepath"

	"github.com/diamondcougar10/Webineer/internal/errors"
)

// writeTemplateFile writes template data under dir, creating the directory
// if needed. An existing template is never overwritten.
func writeTemplateFile(dir string, data []byte) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.IOWriteError(err, dir)
	}
	path := filepath.Join(dir, TemplateName)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.IOWriteError(err, path)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(data); err != nil {
		return errors.IOWriteError(err, path)
	}
	return nil
}
