// Package projectfile persists a site.Project to and from its on-disk
// .siteproj representation: a single UTF-8, indented JSON document. The
// format is the persistence contract and must stay stable across versions.
package projectfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/diamondcougar10/Webineer/internal/errors"
	"github.com/diamondcougar10/Webineer/internal/logfields"
	"github.com/diamondcougar10/Webineer/internal/site"
)

// Extension is the conventional project file extension.
const Extension = ".siteproj"

// Save serializes the project to path. The document is written to a
// temporary file in the same directory and renamed into place so a crash
// mid-write cannot leave a truncated project file behind.
func Save(path string, project *site.Project) error {
	data, err := encode(project)
	if err != nil {
		// Encoding a ToMap result cannot realistically fail, but a
		// failure here must still surface as a write error.
		return errors.IOWriteError(err, path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.IOWriteError(err, path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.IOWriteError(err, path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.IOWriteError(err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.IOWriteError(err, path)
	}

	slog.Debug("Saved project", logfields.Path(path), logfields.Project(project.Name))
	return nil
}

// Load reads and parses a project file. Fails with IOReadError if the file
// is missing or unreadable, MalformedProjectData if the content is not a
// JSON object of the expected shape.
func Load(path string) (*site.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IOReadError(err, path)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.MalformedProjectData(err, path)
	}

	project, err := site.FromMap(raw)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded project", logfields.Path(path), logfields.Project(project.Name))
	return project, nil
}

// encode produces the canonical on-disk form: two-space indentation, HTML
// characters and non-ASCII text preserved verbatim.
func encode(project *site.Project) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(project.ToMap()); err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}
	return buf.Bytes(), nil
}
