package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	oerrors "github.com/leetkick/leetkick/internal/errors"
)

// TemplateMarker marks a file in a language directory as a template.
const TemplateMarker = "_template."

// Template is a file rendered once per exercise.
type Template struct {
	// Path is the path relative to the language directory.
	Path string

	// Kind is the file name part before the marker ("exercise", "test").
	Kind string

	// Ext is the extension after the marker, including the dot.
	Ext string

	// Content is the raw template text.
	Content string
}

// ConfigFile is a file copied verbatim into a new language workspace.
type ConfigFile struct {
	// Path is the path relative to the language directory, slash-separated.
	Path string

	// Content is the file content.
	Content []byte

	// Mode is the file permission bits from the store.
	Mode fs.FileMode
}

// Store exposes the template tree: one directory per supported language.
type Store struct {
	fsys     fs.FS
	specs    map[string]LanguageSpec
	location string
}

// NewStore creates a store over fsys. A languages.yaml at the root of fsys
// replaces the built-in manifest.
func NewStore(fsys fs.FS, location string) (*Store, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if errors.Is(err, fs.ErrNotExist) {
		data = defaultManifest
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}

	specs, err := parseManifest(data)
	if err != nil {
		return nil, err
	}

	return &Store{fsys: fsys, specs: specs, location: location}, nil
}

// Default returns the store backed by the embedded templates.
func Default() *Store {
	s, err := NewStore(EmbeddedFS(), "embedded")
	if err != nil {
		// The embedded manifest is covered by tests.
		panic(err)
	}
	return s
}

// Open returns a store for an on-disk template directory.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}
	return NewStore(os.DirFS(dir), dir)
}

// Location describes where the templates come from.
func (s *Store) Location() string {
	return s.location
}

// Languages returns the supported languages, sorted.
func (s *Store) Languages() []string {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil
	}

	var langs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether the store has a directory for lang.
func (s *Store) IsSupported(lang string) bool {
	if lang == "" || lang != path.Base(lang) || strings.HasPrefix(lang, ".") {
		return false
	}
	info, err := fs.Stat(s.fsys, lang)
	return err == nil && info.IsDir()
}

// Language returns the settings for lang.
func (s *Store) Language(lang string) (LanguageSpec, error) {
	if !s.IsSupported(lang) {
		return LanguageSpec{}, oerrors.NewLanguageNotSupportedError(lang, s.Languages())
	}
	if spec, ok := s.specs[lang]; ok {
		return spec, nil
	}
	return defaultSpec(lang), nil
}

// Templates returns every template of lang, sorted by path.
func (s *Store) Templates(lang string) ([]Template, error) {
	var out []Template
	err := s.walk(lang, func(rel string, _ fs.FileInfo, content []byte) {
		kind, ext, ok := SplitTemplateName(path.Base(rel))
		if !ok {
			return
		}
		out = append(out, Template{
			Path:    rel,
			Kind:    kind,
			Ext:     ext,
			Content: string(content),
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigFiles returns every non-template file of lang, sorted by path.
func (s *Store) ConfigFiles(lang string) ([]ConfigFile, error) {
	var out []ConfigFile
	err := s.walk(lang, func(rel string, info fs.FileInfo, content []byte) {
		if IsTemplateName(path.Base(rel)) {
			return
		}
		out = append(out, ConfigFile{
			Path:    rel,
			Content: content,
			Mode:    info.Mode().Perm(),
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walk visits every regular file under lang in lexical order.
func (s *Store) walk(lang string, visit func(rel string, info fs.FileInfo, content []byte)) error {
	if !s.IsSupported(lang) {
		return oerrors.NewLanguageNotSupportedError(lang, s.Languages())
	}

	err := fs.WalkDir(s.fsys, lang, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", p, err)
		}

		visit(strings.TrimPrefix(p, lang+"/"), info, content)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking templates for %s: %w", lang, err)
	}
	return nil
}

// IsTemplateName reports whether a file name carries the template marker.
func IsTemplateName(name string) bool {
	return strings.Contains(name, TemplateMarker)
}

// SplitTemplateName splits "exercise_template.ts" into ("exercise", ".ts").
func SplitTemplateName(name string) (kind, ext string, ok bool) {
	i := strings.Index(name, TemplateMarker)
	if i < 0 {
		return "", "", false
	}
	return name[:i], "." + name[i+len(TemplateMarker):], true
}
