// Package testutil provides shared test helpers for posts directories and
// comment databases.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oward/scribe/internal/comments"
	"github.com/oward/scribe/internal/storage"
)

// TestStore creates a temporary SQLite comment store that is automatically
// cleaned up.
func TestStore(t *testing.T) *comments.Store {
	t.Helper()
	dbFile, err := os.CreateTemp("", "scribe-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	s, err := comments.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestPostsDir creates a temporary posts directory with a storage.Provider.
func TestPostsDir(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WritePost writes a post file directly into dir.
func WritePost(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
