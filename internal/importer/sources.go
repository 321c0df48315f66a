package importer

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// SourceType identifies what kind of content source an import reads from.
type SourceType string

const (
	SourceFolder SourceType = "folder"
	SourceZip    SourceType = "zip"
	SourceFile   SourceType = "file"
	SourceGit    SourceType = "git"
)

// SniffSourceType determines the source type from the source string. Git
// URLs are recognized by scheme or suffix; everything else is classified by
// what is on disk.
func SniffSourceType(source string) SourceType {
	if strings.HasPrefix(source, "git@") || strings.HasSuffix(source, ".git") ||
		strings.HasPrefix(source, "git://") {
		return SourceGit
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return SourceGit
	}
	if st, err := os.Stat(source); err == nil && st.IsDir() {
		return SourceFolder
	}
	if strings.EqualFold(filepath.Ext(source), ".zip") {
		return SourceZip
	}
	return SourceFile
}

// extractZip unpacks an archive into destDir. Entries that would escape the
// destination are rejected.
func extractZip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open zip archive: %w", err)
	}
	defer func() { _ = reader.Close() }()

	for _, entry := range reader.File {
		cleaned := filepath.Clean(entry.Name)
		if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
			return fmt.Errorf("zip entry escapes archive root: %s", entry.Name)
		}
		destPath := filepath.Join(destDir, cleaned)

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o750); err != nil {
				return fmt.Errorf("create directory %s: %w", destPath, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
			return fmt.Errorf("create directory for %s: %w", destPath, err)
		}
		if err := extractZipEntry(entry, destPath); err != nil {
			return err
		}
	}
	return nil
}

func extractZipEntry(entry *zip.File, destPath string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open zip entry %s: %w", entry.Name, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}
	defer func() { _ = dst.Close() }()

	// Limit the copy so a crafted archive cannot expand without bound.
	if _, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1)); err != nil {
		return fmt.Errorf("extract %s: %w", entry.Name, err)
	}
	return nil
}

// cloneRepository shallow-clones a git repository into destDir.
func cloneRepository(url, destDir string) error {
	_, err := git.PlainClone(destDir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}
	// Drop the .git directory so repository internals are never scanned.
	if err := os.RemoveAll(filepath.Join(destDir, ".git")); err != nil {
		return fmt.Errorf("remove .git directory: %w", err)
	}
	return nil
}
