// Package runner invokes a language's external test tool on one exercise.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/templates"
	"github.com/leetkick/leetkick/internal/workspace"
)

// waitDelay bounds how long Run waits for output pipes after the process is
// killed on timeout.
const waitDelay = 500 * time.Millisecond

// Result is the outcome of one test run.
type Result struct {
	// Language is the language workspace the tests ran in.
	Language string

	// Exercise is the resolved exercise.
	Exercise *workspace.Exercise

	// Command is the executed command line.
	Command []string

	// Output is the combined stdout and stderr of the test tool.
	Output string

	// ExitCode is the tool's exit code, or -1 if it did not exit normally.
	ExitCode int

	// Passed is true when the tool exited with code zero.
	Passed bool

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout bounds a test run. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithOutput mirrors the tool's output to w while it runs.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.stream = w
	}
}

// Runner runs exercise tests with the command from the template store manifest.
type Runner struct {
	store   *templates.Store
	timeout time.Duration
	stream  io.Writer
}

// New creates a runner.
func New(store *templates.Store, opts ...Option) *Runner {
	r := &Runner{store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves identifier in the lang workspace of ws and runs its tests.
//
// A language unknown to the store fails with ErrLanguageNotSupported, one
// that was never added with ErrLanguageWorkspaceNotFound. A non-zero exit,
// a missing tool and a timeout all fail with ErrTestsFailed; the returned
// Result is non-nil whenever the tool was started or looked up.
func (r *Runner) Run(ctx context.Context, ws *workspace.Workspace, lang, identifier string) (*Result, error) {
	langDir, err := ws.RequireLanguage(lang, r.store)
	if err != nil {
		return nil, err
	}

	ex, err := workspace.ResolveProblem(langDir, identifier)
	if err != nil {
		return nil, err
	}

	spec, err := r.store.Language(lang)
	if err != nil {
		return nil, err
	}
	if spec.Test.Command == "" {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("language %s has no test command", lang),
			r.store.Location(),
			"Add a test command to "+templates.ManifestFile+".")
	}

	argv := commandLine(spec, ex)
	result := &Result{Language: lang, Exercise: ex, Command: argv, ExitCode: -1}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var buf bytes.Buffer
	var out io.Writer = &buf
	if r.stream != nil {
		out = io.MultiWriter(&buf, r.stream)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = langDir
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.WaitDelay = waitDelay

	output.LanguageLogger(lang).Debug("running tests", "dir", langDir, "command", strings.Join(argv, " "))

	start := time.Now()
	runErr := cmd.Run()
	result.Duration = time.Since(start)
	result.Output = buf.String()
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
		result.Passed = true
		return result, nil
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return result, oerrors.WrapCause(oerrors.ErrTestsFailed,
			fmt.Sprintf("tests for %s timed out after %s", ex.Name, r.timeout), ctx.Err())
	case errors.Is(runErr, exec.ErrNotFound):
		return result, oerrors.WrapCause(oerrors.ErrTestsFailed,
			fmt.Sprintf("test command %q not found", argv[0]), runErr)
	case errors.As(runErr, &exitErr):
		return result, oerrors.Wrap(oerrors.ErrTestsFailed,
			fmt.Sprintf("tests for %s failed with exit code %d", ex.Name, result.ExitCode))
	default:
		return result, oerrors.WrapCause(oerrors.ErrTestsFailed,
			fmt.Sprintf("running %s", argv[0]), runErr)
	}
}

// commandLine renders the manifest test command for an exercise.
func commandLine(spec templates.LanguageSpec, ex *workspace.Exercise) []string {
	b := bindingsFor(spec, ex)
	argv := make([]string, 0, len(spec.Test.Args)+1)
	argv = append(argv, templates.Render(spec.Test.Command, b))
	for _, arg := range spec.Test.Args {
		argv = append(argv, templates.Render(arg, b))
	}
	return argv
}

// bindingsFor derives the tokens available to test commands. Metadata fills
// in slug-based names when present.
func bindingsFor(spec templates.LanguageSpec, ex *workspace.Exercise) templates.Bindings {
	b := templates.Bindings{
		templates.TokenProblemDir: ex.Name,
	}
	if spec.Package {
		b[templates.TokenPackage] = ex.Name
	}
	if id, ok := problem.ParseID(strings.TrimPrefix(ex.Name, templates.ProblemDirPrefix)); ok {
		b[templates.TokenID] = strconv.Itoa(id)
	}
	if ex.Meta != nil && ex.Meta.Slug != "" {
		b[templates.TokenFileName] = templates.FileName(ex.Meta.Slug, spec.Naming)
		b[templates.TokenClassName] = templates.PascalCase(ex.Meta.Slug)
		b[templates.TokenTitle] = ex.Meta.Title
	}
	return b
}
