package workspace

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/go-git/go-git/v5"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
)

// ConfigVersion is written into new markers.
const ConfigVersion = "1.0.0"

//go:embed schema.cue
var schemaCUE []byte

// gitignore is written at the root of workspaces created with --git.
const gitignore = `.DS_Store
node_modules/
__pycache__/
.pytest_cache/
build/
.gradle/
`

// Config is the content of the marker file.
type Config struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	Languages []string  `json:"languages"`
}

// InitOptions configures Init.
type InitOptions struct {
	// Force rewrites an existing marker.
	Force bool

	// Git initializes a git repository with a .gitignore when none exists.
	Git bool
}

// Init creates a workspace in dir.
func Init(dir string, opts InitOptions) (*Workspace, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", root, err)
	}

	ws := &Workspace{Root: root}
	if isFile(ws.MarkerPath()) && !opts.Force {
		return nil, &oerrors.DetailError{
			Type:     "workspace already exists",
			Message:  fmt.Sprintf("%s already exists", MarkerFile),
			Location: root,
			Hint:     "Use --force to rewrite the marker file.",
			Cause:    oerrors.ErrWorkspaceExists,
		}
	}

	if parent, err := FindRoot(filepath.Dir(root)); err == nil && parent.Root != root {
		output.Debug("creating nested workspace", "parent", parent.Root)
	}

	cfg := &Config{
		Version:   ConfigVersion,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Languages: []string{},
	}
	if err := ws.SaveConfig(cfg); err != nil {
		return nil, err
	}

	if opts.Git {
		if err := initGit(root); err != nil {
			return nil, err
		}
	}

	return ws, nil
}

// initGit initializes a repository in root unless one exists, and writes a
// .gitignore unless one exists.
func initGit(root string) error {
	_, err := git.PlainInit(root, false)
	switch {
	case errors.Is(err, git.ErrRepositoryAlreadyExists):
		output.Debug("git repository already exists", "root", root)
	case err != nil:
		return fmt.Errorf("initializing git repository: %w", err)
	default:
		output.Debug("initialized git repository", "root", root)
	}

	path := filepath.Join(root, ".gitignore")
	if isFile(path) {
		return nil
	}
	if err := os.WriteFile(path, []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

// LoadConfig reads and validates the marker file.
func (w *Workspace) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(w.MarkerPath())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", MarkerFile, err)
	}

	if err := ValidateConfig(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", MarkerFile, err)
	}
	return &cfg, nil
}

// SaveConfig writes the marker file.
func (w *Workspace) SaveConfig(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", MarkerFile, err)
	}
	if err := os.WriteFile(w.MarkerPath(), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", MarkerFile, err)
	}
	return nil
}

// RecordLanguage adds lang to the marker's language list. A marker that does
// not validate is left untouched; it still denotes the workspace root.
func (w *Workspace) RecordLanguage(lang string) error {
	cfg, err := w.LoadConfig()
	if err != nil {
		output.Warn("not updating workspace marker", "path", w.MarkerPath(), "error", err)
		return nil
	}

	if slices.Contains(cfg.Languages, lang) {
		return nil
	}
	cfg.Languages = append(cfg.Languages, lang)
	slices.Sort(cfg.Languages)
	return w.SaveConfig(cfg)
}

// ValidateConfig checks marker content against the embedded CUE schema.
func ValidateConfig(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return fmt.Errorf("compiling marker schema: %w", schema.Err())
	}

	value := ctx.CompileBytes(data, cue.Filename(MarkerFile))
	if value.Err() != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s is not valid JSON: %v", MarkerFile, value.Err()),
			MarkerFile,
			"Fix the file or recreate it with 'leetkick init --force'.")
	}

	def := schema.LookupPath(cue.ParsePath("#Workspace"))
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s does not match the workspace schema: %v", MarkerFile, err),
			MarkerFile,
			"Fix the file or recreate it with 'leetkick init --force'.")
	}
	return nil
}
