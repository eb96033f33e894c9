// Package errors provides sentinel errors for the leetkick CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrWorkspaceNotFound indicates no .leetkick.json was found in any ancestor directory.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrWorkspaceExists indicates init was run inside an existing workspace root.
	ErrWorkspaceExists = errors.New("workspace already exists")

	// ErrLanguageNotSupported indicates the template store has no directory for the language.
	ErrLanguageNotSupported = errors.New("language not supported")

	// ErrLanguageWorkspaceNotFound indicates a supported language that was never added.
	ErrLanguageWorkspaceNotFound = errors.New("language workspace not found")

	// ErrProblemNotFound indicates an identifier that does not resolve to a problem.
	ErrProblemNotFound = errors.New("problem not found")

	// ErrExerciseExists indicates the exercise directory is already present.
	ErrExerciseExists = errors.New("exercise already exists")

	// ErrUpstream indicates the problem metadata source failed.
	ErrUpstream = errors.New("upstream metadata error")

	// ErrTestsFailed indicates the external test command exited non-zero.
	ErrTestsFailed = errors.New("tests failed")

	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")
)

// Exit codes reported by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input: an unsupported language,
	// an existing exercise or an invalid file.
	ExitValidationError = 2

	// ExitUpstreamError indicates the problem metadata source failed.
	ExitUpstreamError = 3

	// ExitNotFound indicates a missing workspace, language workspace or problem.
	ExitNotFound = 5

	// ExitTestsFailed indicates the exercise tests did not pass.
	ExitTestsFailed = 6
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewWorkspaceNotFoundError reports a failed upward search starting at startDir.
func NewWorkspaceNotFoundError(startDir string) error {
	return &DetailError{
		Type:     "workspace not found",
		Message:  "no .leetkick.json found in this directory or any parent",
		Location: startDir,
		Hint:     "Run 'leetkick init' to create a workspace.",
		Cause:    ErrWorkspaceNotFound,
	}
}

// NewLanguageNotSupportedError reports a language without a template set.
func NewLanguageNotSupportedError(language string, supported []string) error {
	return &DetailError{
		Type:    "language not supported",
		Message: fmt.Sprintf("language %q is not supported", language),
		Hint:    "Supported languages: " + strings.Join(supported, ", "),
		Cause:   ErrLanguageNotSupported,
	}
}

// NewLanguageWorkspaceNotFoundError reports a supported language that has not been added.
func NewLanguageWorkspaceNotFoundError(language, dir string) error {
	return &DetailError{
		Type:     "language workspace not found",
		Message:  fmt.Sprintf("language %q has not been added to this workspace", language),
		Location: dir,
		Hint:     fmt.Sprintf("Run 'leetkick add %s' first.", language),
		Cause:    ErrLanguageWorkspaceNotFound,
	}
}

// NewProblemNotFoundError reports an identifier that resolved to nothing.
func NewProblemNotFoundError(identifier, location string) error {
	return &DetailError{
		Type:     "problem not found",
		Message:  fmt.Sprintf("no problem matches %q", identifier),
		Location: location,
		Hint:     "Use a problem id (e.g. 1), a slug (e.g. two-sum) or a problem_NNNN directory name.",
		Cause:    ErrProblemNotFound,
	}
}

// NewExerciseExistsError reports an exercise directory that would be overwritten.
func NewExerciseExistsError(dir string) error {
	return &DetailError{
		Type:     "exercise already exists",
		Message:  fmt.Sprintf("exercise directory %s already exists", dir),
		Location: dir,
		Hint:     "Use --force to overwrite the generated files.",
		Cause:    ErrExerciseExists,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapCause wraps cause under a sentinel so both match errors.Is.
func WrapCause(sentinel error, message string, cause error) error {
	return fmt.Errorf("%s: %w: %w", message, sentinel, cause)
}

// ExitError carries a process exit code through cobra's error return.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command already reported the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
