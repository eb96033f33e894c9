// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// markerJSON is a minimal valid workspace marker.
const markerJSON = `{
  "version": "1.0.0",
  "createdAt": "2024-01-01T00:00:00Z",
  "languages": []
}
`

// TempDir creates a temporary directory that is removed when the test ends.
// Symlinks are resolved so paths compare equal to those derived from os.Getwd.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	return dir
}

// NewWorkspace creates a temporary directory holding a workspace marker and
// an empty directory for each language given.
func NewWorkspace(t *testing.T, languages ...string) string {
	t.Helper()
	root := TempDir(t)
	WriteFile(t, root, ".leetkick.json", markerJSON)
	for _, lang := range languages {
		MkdirAll(t, filepath.Join(root, lang))
	}
	return root
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of a file, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// MkdirAll creates a directory tree.
func MkdirAll(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", dir, err)
	}
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Chdir changes the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	t.Chdir(dir)
}
