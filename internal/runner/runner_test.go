package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/templates"
	"github.com/leetkick/leetkick/internal/testutil"
	"github.com/leetkick/leetkick/internal/workspace"
)

const manifest = `
pass:
  test:
    command: sh
    args: [-c, 'echo "testing $0"; echo "Tests passed!"', __PROBLEM_DIR__]
fail:
  test:
    command: sh
    args: [-c, 'echo "1 failing" >&2; exit 3']
check:
  test:
    command: sh
    args: [-c, 'test -f "$0/ok"', __PROBLEM_DIR__]
slow:
  test:
    command: sh
    args: [-c, 'sleep 2']
missing:
  test:
    command: leetkick-no-such-test-tool
named:
  naming: snake
  package: true
  test:
    command: echo
    args: [__PACKAGE_NAME__, __EXERCISE_FILE_NAME__, __PROBLEM_ID__]
untested: {}
`

func newStore(t *testing.T) *templates.Store {
	t.Helper()
	fsys := fstest.MapFS{templates.ManifestFile: {Data: []byte(manifest)}}
	for _, lang := range []string{"pass", "fail", "check", "slow", "missing", "named", "untested", "unadded"} {
		fsys[lang+"/exercise_template.txt"] = &fstest.MapFile{Data: []byte(templates.TokenTitle)}
	}
	store, err := templates.NewStore(fsys, "test")
	require.NoError(t, err)
	return store
}

func newWorkspace(t *testing.T, langs ...string) *workspace.Workspace {
	t.Helper()
	root := testutil.NewWorkspace(t, langs...)
	for _, lang := range langs {
		testutil.MkdirAll(t, filepath.Join(root, lang, "problem_0001"))
	}
	return &workspace.Workspace{Root: root}
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
}

func TestRun_Pass(t *testing.T) {
	skipWithoutShell(t)
	ws := newWorkspace(t, "pass")

	var streamed bytes.Buffer
	r := New(newStore(t), WithOutput(&streamed))

	res, err := r.Run(context.Background(), ws, "pass", "1")
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "problem_0001", res.Exercise.Name)
	assert.Contains(t, res.Output, "testing problem_0001")
	assert.Contains(t, res.Output, "Tests passed!")
	assert.Equal(t, res.Output, streamed.String())
}

func TestRun_Fail(t *testing.T) {
	skipWithoutShell(t)
	ws := newWorkspace(t, "fail")

	res, err := New(newStore(t)).Run(context.Background(), ws, "fail", "problem_0001")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTestsFailed))
	require.NotNil(t, res)
	assert.False(t, res.Passed)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Output, "1 failing")
}

func TestRun_ScopedToProblemDir(t *testing.T) {
	skipWithoutShell(t)
	ws := newWorkspace(t, "check")
	r := New(newStore(t))

	_, err := r.Run(context.Background(), ws, "check", "1")
	assert.True(t, errors.Is(err, oerrors.ErrTestsFailed))

	testutil.WriteFile(t, filepath.Join(ws.Root, "check", "problem_0001"), "ok", "")
	res, err := r.Run(context.Background(), ws, "check", "1")
	require.NoError(t, err)
	assert.True(t, res.Passed)
}

func TestRun_Timeout(t *testing.T) {
	skipWithoutShell(t)
	ws := newWorkspace(t, "slow")

	start := time.Now()
	res, err := New(newStore(t), WithTimeout(50*time.Millisecond)).Run(context.Background(), ws, "slow", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTestsFailed))
	assert.Contains(t, err.Error(), "timed out")
	assert.False(t, res.Passed)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRun_MissingTool(t *testing.T) {
	ws := newWorkspace(t, "missing")

	res, err := New(newStore(t)).Run(context.Background(), ws, "missing", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTestsFailed))
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.False(t, res.Passed)
}

func TestRun_Bindings(t *testing.T) {
	skipWithoutShell(t)
	ws := newWorkspace(t, "named")
	dir := filepath.Join(ws.Root, "named", "problem_0001")
	require.NoError(t, workspace.WriteMeta(dir, &workspace.ExerciseMeta{ID: 1, Slug: "two-sum"}))

	res, err := New(newStore(t)).Run(context.Background(), ws, "named", "two-sum")
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "problem_0001", "two_sum", "1"}, res.Command)
	assert.Equal(t, "problem_0001 two_sum 1\n", res.Output)
}

func TestRun_Errors(t *testing.T) {
	ws := newWorkspace(t, "pass", "untested")
	r := New(newStore(t))

	tests := []struct {
		name       string
		lang       string
		identifier string
		want       error
	}{
		{"not supported", "cobol", "1", oerrors.ErrLanguageNotSupported},
		{"not added", "unadded", "1", oerrors.ErrLanguageWorkspaceNotFound},
		{"unknown problem", "pass", "2", oerrors.ErrProblemNotFound},
		{"no test command", "untested", "1", oerrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Run(context.Background(), ws, tt.lang, tt.identifier)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
