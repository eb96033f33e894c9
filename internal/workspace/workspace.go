// Package workspace locates leetkick workspaces and resolves exercises inside them.
//
// A workspace is a directory holding a .leetkick.json marker. Each supported
// language that has been added lives in a subdirectory named after it, and each
// exercise in a problem_NNNN directory below that.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
)

// MarkerFile denotes a workspace root.
const MarkerFile = ".leetkick.json"

// LanguageSet is the view of the template store the workspace needs.
type LanguageSet interface {
	Languages() []string
	IsSupported(lang string) bool
}

// Workspace is a located workspace root.
type Workspace struct {
	// Root is the absolute path of the directory holding the marker file.
	Root string
}

// FindRoot walks upward from startDir, inclusive, and returns the nearest
// directory containing the marker file.
func FindRoot(startDir string) (*Workspace, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", startDir, err)
	}

	dir := start
	for {
		if isFile(filepath.Join(dir, MarkerFile)) {
			output.Debug("workspace found", "root", dir, "start", start)
			return &Workspace{Root: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, oerrors.NewWorkspaceNotFoundError(start)
		}
		dir = parent
	}
}

// MarkerPath returns the path of the marker file.
func (w *Workspace) MarkerPath() string {
	return filepath.Join(w.Root, MarkerFile)
}

// LanguageDir returns the path of a language workspace, whether or not it exists.
func (w *Workspace) LanguageDir(lang string) string {
	return filepath.Join(w.Root, lang)
}

// HasLanguage reports whether the language workspace directory exists.
func (w *Workspace) HasLanguage(lang string) bool {
	return isDir(w.LanguageDir(lang))
}

// Languages returns the added languages: subdirectories of the root that are
// also supported by the store. Unknown directories are ignored.
func (w *Workspace) Languages(store LanguageSet) ([]string, error) {
	entries, err := os.ReadDir(w.Root)
	if err != nil {
		return nil, fmt.Errorf("reading workspace %s: %w", w.Root, err)
	}

	var langs []string
	for _, e := range entries {
		if e.IsDir() && store.IsSupported(e.Name()) {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs, nil
}

// RequireLanguage returns the language workspace directory, failing with
// ErrLanguageNotSupported when the store does not know lang and with
// ErrLanguageWorkspaceNotFound when it was never added.
func (w *Workspace) RequireLanguage(lang string, store LanguageSet) (string, error) {
	if !store.IsSupported(lang) {
		return "", oerrors.NewLanguageNotSupportedError(lang, store.Languages())
	}

	dir := w.LanguageDir(lang)
	if !isDir(dir) {
		return "", oerrors.NewLanguageWorkspaceNotFoundError(lang, dir)
	}
	return dir, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
