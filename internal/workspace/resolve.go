package workspace

import (
	"path/filepath"
	"strings"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/templates"
)

// ResolveProblem finds the exercise directory for identifier inside a
// language workspace. It tries, in order: an exact existing directory name,
// a numeric id (bare, zero-padded or with the problem_ prefix), and a slug
// recorded in exercise metadata. A slug shared by several directories does
// not resolve.
func ResolveProblem(langDir, identifier string) (*Exercise, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, oerrors.NewProblemNotFoundError(identifier, langDir)
	}

	if identifier == filepath.Base(identifier) && !strings.HasPrefix(identifier, ".") {
		if isDir(filepath.Join(langDir, identifier)) {
			ex := loadExercise(langDir, identifier)
			return &ex, nil
		}
	}

	if id, ok := problem.ParseID(strings.TrimPrefix(identifier, templates.ProblemDirPrefix)); ok {
		name := templates.ProblemDirName(id)
		if isDir(filepath.Join(langDir, name)) {
			ex := loadExercise(langDir, name)
			return &ex, nil
		}
	}

	exercises, err := Exercises(langDir)
	if err != nil {
		return nil, err
	}

	var matches []Exercise
	for _, ex := range exercises {
		if ex.Meta != nil && strings.EqualFold(ex.Meta.Slug, identifier) {
			matches = append(matches, ex)
		}
	}

	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		return nil, oerrors.NewProblemNotFoundError(identifier, langDir)
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		output.Debug("ambiguous slug", "slug", identifier, "matches", strings.Join(names, ","))
		return nil, oerrors.NewProblemNotFoundError(identifier, langDir)
	}
}
