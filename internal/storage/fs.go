package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Ext is the recognized post file extension.
const Ext = ".md"

// FS implements Provider backed by a flat local directory of markdown files.
type FS struct {
	root string // absolute path to the posts directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// safePath resolves a slug to its file path, rejecting anything that could
// escape the posts directory.
func (f *FS) safePath(slug string) (string, error) {
	if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return "", fmt.Errorf("storage: invalid slug: %q", slug)
	}
	return filepath.Join(f.root, slug+Ext), nil
}

// List enumerates the directory and returns one entry per .md file.
// os.ReadDir yields entries sorted by file name, which fixes the catalog's
// tie-break order.
func (f *FS) List() ([]PostFile, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list %s: %w", f.root, err)
	}
	var out []PostFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("storage: stat %s: %w", e.Name(), err)
		}
		out = append(out, PostFile{
			Slug:    strings.TrimSuffix(e.Name(), Ext),
			ModTime: info.ModTime(),
		})
	}
	return out, nil
}

// Read returns the raw bytes and modification time of a post file.
// A missing file surfaces as an fs.ErrNotExist-wrapped error.
func (f *FS) Read(slug string) ([]byte, time.Time, error) {
	path, err := f.safePath(slug)
	if err != nil {
		return nil, time.Time{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("storage: stat %s: %w", slug, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("storage: read %s: %w", slug, err)
	}
	return data, info.ModTime(), nil
}

// Write atomically writes content: tmp file → fsync → rename.
func (f *FS) Write(slug string, content []byte) error {
	path, err := f.safePath(slug)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".scribe-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
