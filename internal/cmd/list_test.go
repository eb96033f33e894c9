package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leetkick/leetkick/internal/cmdtypes"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem/mocks"
	"github.com/leetkick/leetkick/internal/testutil"
)

func TestList(t *testing.T) {
	root := enterWorkspace(t)
	cfg := &cmdtypes.GlobalConfig{}
	for _, lang := range []string{"python", "typescript"} {
		_, _, err := execute(NewAddCmd(cfg), lang)
		require.NoError(t, err)
	}

	ctrl := gomock.NewController(t)
	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Fetch(gomock.Any(), "1").Return(twoSum(), nil).Times(2)
	for _, lang := range []string{"python", "typescript"} {
		_, _, err := execute(fetchCmd(cfg, source), "1", "-l", lang)
		require.NoError(t, err)
	}
	testutil.WriteFile(t, filepath.Join(root, "python", "problem_0001"), "two_sum.py", "# solved\n")
	testutil.MkdirAll(t, filepath.Join(root, "python", "problem_0002"))

	stdout, _, err := execute(NewListCmd(cfg), "-o", "json")
	require.NoError(t, err)

	var rows []output.ExerciseRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, output.ExerciseRow{
		Language: "python", Directory: "problem_0001", ID: 1,
		Slug: "two-sum", Title: "Two Sum", Difficulty: "Easy", Modified: true,
	}, rows[0])
	assert.Equal(t, output.ExerciseRow{Language: "python", Directory: "problem_0002", ID: 2}, rows[1])
	assert.Equal(t, "typescript", rows[2].Language)
	assert.False(t, rows[2].Modified)

	stdout, _, err = execute(NewListCmd(cfg), "-l", "typescript")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Two Sum")
	assert.NotContains(t, stdout, "python")
}

func TestList_Empty(t *testing.T) {
	enterWorkspace(t, "java")

	stdout, _, err := execute(NewListCmd(&cmdtypes.GlobalConfig{}))
	require.NoError(t, err)
	assert.Contains(t, stdout, "No exercises yet")

	stdout, _, err = execute(NewListCmd(&cmdtypes.GlobalConfig{}), "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
}

func TestList_InvalidFormat(t *testing.T) {
	enterWorkspace(t)

	_, _, err := execute(NewListCmd(&cmdtypes.GlobalConfig{}), "-o", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}
