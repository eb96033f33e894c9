package cmd

import (
	"errors"

	oerrors "github.com/leetkick/leetkick/internal/errors"
)

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitUpstreamError   = oerrors.ExitUpstreamError
	ExitNotFound        = oerrors.ExitNotFound
	ExitTestsFailed     = oerrors.ExitTestsFailed
)

// ExitCodeFromError determines the exit code for an error returned by a command.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrTestsFailed):
		return ExitTestsFailed
	case errors.Is(err, oerrors.ErrUpstream):
		return ExitUpstreamError
	case errors.Is(err, oerrors.ErrWorkspaceNotFound),
		errors.Is(err, oerrors.ErrLanguageWorkspaceNotFound),
		errors.Is(err, oerrors.ErrProblemNotFound):
		return ExitNotFound
	case errors.Is(err, oerrors.ErrLanguageNotSupported),
		errors.Is(err, oerrors.ErrExerciseExists),
		errors.Is(err, oerrors.ErrWorkspaceExists),
		errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitUpstreamError:
		return "Upstream Error"
	case ExitNotFound:
		return "Not Found"
	case ExitTestsFailed:
		return "Tests Failed"
	default:
		return "Unknown"
	}
}
