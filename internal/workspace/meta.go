package workspace

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/templates"
)

// MetaFile holds exercise metadata inside each exercise directory.
const MetaFile = ".problem.json"

// hashPrefix tags content hashes with their algorithm.
const hashPrefix = "blake3:"

// ExerciseMeta records what was generated into an exercise directory.
type ExerciseMeta struct {
	ID          int                `json:"id"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Difficulty  problem.Difficulty `json:"difficulty"`
	Language    string             `json:"language"`
	GeneratedAt time.Time          `json:"generatedAt"`

	// Files maps generated file names to their content hash at generation time.
	Files map[string]string `json:"files"`
}

// Exercise is an exercise directory inside a language workspace.
type Exercise struct {
	// Name is the directory name (problem_NNNN).
	Name string

	// Dir is the absolute directory path.
	Dir string

	// Meta is nil when the metadata file is missing or unreadable.
	Meta *ExerciseMeta
}

// HashContent returns the tagged BLAKE3 hash of data.
func HashContent(data []byte) string {
	sum := blake3.Sum256(data)
	return hashPrefix + hex.EncodeToString(sum[:])
}

// WriteMeta writes meta into dir.
func WriteMeta(dir string, meta *ExerciseMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", MetaFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, MetaFile), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", MetaFile, err)
	}
	return nil
}

// ReadMeta reads the metadata file of an exercise directory.
func ReadMeta(dir string) (*ExerciseMeta, error) {
	data, err := os.ReadFile(filepath.Join(dir, MetaFile))
	if err != nil {
		return nil, err
	}

	var meta ExerciseMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parsing %s in %s: %w", MetaFile, dir, err)
	}
	return &meta, nil
}

// Modified returns the generated files whose content no longer matches the
// recorded hash, including files that were removed. Sorted.
func (m *ExerciseMeta) Modified(dir string) []string {
	var changed []string
	for name, want := range m.Files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil || HashContent(data) != want {
			changed = append(changed, name)
		}
	}
	sort.Strings(changed)
	return changed
}

// IsExerciseDirName reports whether name follows the problem_NNNN convention.
func IsExerciseDirName(name string) bool {
	rest, ok := strings.CutPrefix(name, templates.ProblemDirPrefix)
	if !ok || len(rest) < 4 {
		return false
	}
	_, ok = problem.ParseID(rest)
	return ok
}

// Exercises lists the exercise directories of a language workspace, sorted by name.
func Exercises(langDir string) ([]Exercise, error) {
	entries, err := os.ReadDir(langDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", langDir, err)
	}

	var out []Exercise
	for _, e := range entries {
		if !e.IsDir() || !IsExerciseDirName(e.Name()) {
			continue
		}
		out = append(out, loadExercise(langDir, e.Name()))
	}
	return out, nil
}

func loadExercise(langDir, name string) Exercise {
	dir := filepath.Join(langDir, name)
	ex := Exercise{Name: name, Dir: dir}

	meta, err := ReadMeta(dir)
	if err != nil {
		output.Debug("exercise without metadata", "dir", dir, "error", err)
		return ex
	}
	ex.Meta = meta
	return ex
}
