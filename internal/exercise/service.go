package exercise

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/templates"
)

// Service fetches problem metadata and materializes it.
type Service struct {
	source       problem.Source
	materializer *Materializer
}

// NewService creates a fetch service.
func NewService(source problem.Source, materializer *Materializer) *Service {
	return &Service{source: source, materializer: materializer}
}

// Fetch resolves identifier through the metadata source and materializes the
// problem into the language workspace at langDir. A numeric identifier whose
// exercise directory already exists fails before the source is queried.
func (s *Service) Fetch(ctx context.Context, langDir, identifier string, opts Options) (*problem.Problem, *Result, error) {
	if id, ok := problem.ParseID(identifier); ok && !opts.Force {
		dir := filepath.Join(langDir, templates.ProblemDirName(id))
		if exists, err := dirExists(dir); err != nil {
			return nil, nil, err
		} else if exists {
			return nil, nil, oerrors.NewExerciseExistsError(dir)
		}
	}

	p, err := s.source.Fetch(ctx, identifier)
	if err != nil {
		if errors.Is(err, oerrors.ErrUpstream) {
			return nil, nil, err
		}
		return nil, nil, oerrors.WrapCause(oerrors.ErrUpstream, fmt.Sprintf("fetching %q", identifier), err)
	}

	output.Debug("fetched problem", "id", p.ID, "slug", p.Slug, "difficulty", p.Difficulty)

	result, err := s.materializer.Materialize(langDir, p, opts)
	if err != nil {
		return p, nil, err
	}
	return p, result, nil
}
