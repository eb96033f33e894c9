// Package exercise materializes language workspaces and exercise directories
// from the template store.
package exercise

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"time"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/templates"
	"github.com/leetkick/leetkick/internal/workspace"
)

// Options configures Materialize.
type Options struct {
	// Force rewrites the generated files of an existing exercise directory.
	Force bool
}

// Result describes a materialized exercise.
type Result struct {
	// Dir is the exercise directory.
	Dir string

	// Name is the exercise directory name (problem_NNNN).
	Name string

	// Files are the generated file names, sorted.
	Files []string

	// Overwritten is true when an existing directory was rewritten.
	Overwritten bool

	// Edited lists generated files that had been changed since the previous
	// generation and were discarded by the rewrite.
	Edited []string

	// Unchanged lists rewritten files whose content was already identical.
	Unchanged []string
}

// AddResult describes a language workspace initialization.
type AddResult struct {
	// Dir is the language workspace directory.
	Dir string

	// Files are the copied config file paths, slash-separated and sorted.
	Files []string

	// AlreadyAdded is true when the directory existed and nothing was written.
	AlreadyAdded bool
}

// renderedFile is a template rendered in memory.
type renderedFile struct {
	name    string
	content []byte
}

// Materializer writes template store content into a workspace.
type Materializer struct {
	store *templates.Store
	now   func() time.Time
}

// New creates a materializer backed by store.
func New(store *templates.Store) *Materializer {
	return &Materializer{store: store, now: time.Now}
}

// Store returns the template store.
func (m *Materializer) Store() *templates.Store {
	return m.store
}

// AddLanguage creates the language workspace for lang, copies the language's
// config files into it and records the language in the marker. An existing
// language workspace is left untouched.
func (m *Materializer) AddLanguage(ws *workspace.Workspace, lang string) (*AddResult, error) {
	if !m.store.IsSupported(lang) {
		return nil, oerrors.NewLanguageNotSupportedError(lang, m.store.Languages())
	}

	dir := ws.LanguageDir(lang)
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		output.Debug("language workspace exists", "dir", dir)
		return &AddResult{Dir: dir, AlreadyAdded: true}, nil
	case err == nil:
		return nil, fmt.Errorf("%s exists and is not a directory", dir)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}

	configs, err := m.store.ConfigFiles(lang)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(configs))
	for _, cf := range configs {
		target := filepath.Join(dir, filepath.FromSlash(cf.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, cf.Content, fileMode(cf.Mode)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		output.Debug("copied config file", "language", lang, "path", cf.Path)
		files = append(files, cf.Path)
	}
	sort.Strings(files)

	if err := ws.RecordLanguage(lang); err != nil {
		return nil, err
	}

	return &AddResult{Dir: dir, Files: files}, nil
}

// fileMode keeps the executable bit of a store file and makes the copy
// writable by its owner. Embedded files report read-only modes.
func fileMode(mode fs.FileMode) fs.FileMode {
	if mode&0o111 != 0 {
		return 0o755
	}
	return 0o644
}

// Materialize renders every template of the language workspace at langDir
// into problem_NNNN for p. The language is the base name of langDir.
//
// An existing exercise directory fails with ErrExerciseExists unless
// opts.Force is set, in which case only the generated files are rewritten.
// All templates are rendered before anything is written.
func (m *Materializer) Materialize(langDir string, p *problem.Problem, opts Options) (*Result, error) {
	if p == nil || p.ID <= 0 {
		return nil, oerrors.NewValidationError("problem record has no valid id", "", "")
	}

	lang := filepath.Base(langDir)
	spec, err := m.store.Language(lang)
	if err != nil {
		return nil, err
	}

	added, err := dirExists(langDir)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, oerrors.NewLanguageWorkspaceNotFoundError(lang, langDir)
	}

	name := templates.ProblemDirName(p.ID)
	dir := filepath.Join(langDir, name)

	exists, err := dirExists(dir)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, oerrors.NewExerciseExistsError(dir)
	}

	files, err := m.render(p, spec)
	if err != nil {
		return nil, err
	}

	result := &Result{Dir: dir, Name: name, Overwritten: exists}
	if exists {
		result.Edited = editedFiles(dir, files)
		for _, f := range result.Edited {
			output.Warn("discarding local changes", "file", filepath.Join(name, f))
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	meta := &workspace.ExerciseMeta{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Difficulty:  p.Difficulty,
		Language:    lang,
		GeneratedAt: m.now().UTC().Truncate(time.Second),
		Files:       make(map[string]string, len(files)),
	}

	for _, f := range files {
		target := filepath.Join(dir, f.name)
		if exists {
			if prev, err := os.ReadFile(target); err == nil && bytes.Equal(prev, f.content) {
				result.Unchanged = append(result.Unchanged, f.name)
			}
		}
		if err := os.WriteFile(target, f.content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		output.Debug("wrote file", "path", filepath.Join(name, f.name))
		meta.Files[f.name] = workspace.HashContent(f.content)
		result.Files = append(result.Files, f.name)
	}
	sort.Strings(result.Files)
	sort.Strings(result.Unchanged)

	if err := workspace.WriteMeta(dir, meta); err != nil {
		return nil, err
	}

	return result, nil
}

// render produces every output file in memory.
func (m *Materializer) render(p *problem.Problem, spec templates.LanguageSpec) ([]renderedFile, error) {
	tmpls, err := m.store.Templates(spec.Name)
	if err != nil {
		return nil, err
	}
	if len(tmpls) == 0 {
		return nil, fmt.Errorf("language %s has no templates", spec.Name)
	}

	bindings := templates.BindingsFor(p, spec)
	output.Debug("rendering exercise",
		"language", spec.Name,
		"id", p.ID,
		"slug", p.Slug,
		"file", bindings[templates.TokenFileName])

	seen := make(map[string]string, len(tmpls))
	files := make([]renderedFile, 0, len(tmpls))
	for _, t := range tmpls {
		name := templates.Render(spec.OutputName(t), bindings)
		if name == "" || name != path.Base(name) || name == "." || name == ".." || name == workspace.MetaFile {
			return nil, fmt.Errorf("template %s renders to invalid file name %q", t.Path, name)
		}
		if other, ok := seen[name]; ok {
			return nil, fmt.Errorf("templates %s and %s both render to %s", other, t.Path, name)
		}
		seen[name] = t.Path

		files = append(files, renderedFile{
			name:    name,
			content: []byte(templates.Render(t.Content, bindings)),
		})
	}
	return files, nil
}

// editedFiles returns the files about to be rewritten whose content differs
// from what was last generated.
func editedFiles(dir string, files []renderedFile) []string {
	meta, err := workspace.ReadMeta(dir)
	if err != nil {
		output.Debug("no exercise metadata, skipping edit check", "dir", dir)
		return nil
	}

	var edited []string
	for _, name := range meta.Modified(dir) {
		if slices.ContainsFunc(files, func(f renderedFile) bool { return f.name == name }) {
			edited = append(edited, name)
		}
	}
	return edited
}

func dirExists(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s exists and is not a directory", dir)
	}
	return true, nil
}
