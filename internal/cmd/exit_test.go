package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/leetkick/leetkick/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"exit error", &oerrors.ExitError{Code: 42, Err: errors.New("x")}, 42},
		{"wrapped exit error", fmt.Errorf("outer: %w", &oerrors.ExitError{Code: ExitNotFound}), ExitNotFound},
		{"workspace not found", oerrors.NewWorkspaceNotFoundError("/tmp"), ExitNotFound},
		{"language workspace not found", oerrors.NewLanguageWorkspaceNotFoundError("java", "/ws/java"), ExitNotFound},
		{"problem not found", oerrors.NewProblemNotFoundError("99999", "/ws/java"), ExitNotFound},
		{"language not supported", oerrors.NewLanguageNotSupportedError("cobol", []string{"java"}), ExitValidationError},
		{"exercise exists", oerrors.NewExerciseExistsError("/ws/java/problem_0001"), ExitValidationError},
		{"workspace exists", oerrors.Wrap(oerrors.ErrWorkspaceExists, "/ws"), ExitValidationError},
		{"validation", oerrors.NewValidationError("bad", "", ""), ExitValidationError},
		{"upstream", oerrors.Wrap(oerrors.ErrUpstream, "leetcode: 502"), ExitUpstreamError},
		{
			"upstream not found",
			oerrors.WrapCause(oerrors.ErrUpstream, "leetcode", oerrors.NewProblemNotFoundError("x", "")),
			ExitUpstreamError,
		},
		{"tests failed", oerrors.Wrap(oerrors.ErrTestsFailed, "exit status 1"), ExitTestsFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Upstream Error", ExitCodeName(ExitUpstreamError))
	assert.Equal(t, "Tests Failed", ExitCodeName(ExitTestsFailed))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
