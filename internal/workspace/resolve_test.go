package workspace

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/testutil"
)

func writeExercise(t *testing.T, langDir, name, slug string) string {
	t.Helper()
	dir := filepath.Join(langDir, name)
	testutil.MkdirAll(t, dir)
	if slug != "" {
		require.NoError(t, WriteMeta(dir, &ExerciseMeta{Slug: slug, Language: filepath.Base(langDir)}))
	}
	return dir
}

func TestResolveProblem(t *testing.T) {
	langDir := filepath.Join(testutil.NewWorkspace(t, "typescript"), "typescript")
	twoSum := writeExercise(t, langDir, "problem_0001", "two-sum")
	writeExercise(t, langDir, "problem_0002", "add-two-numbers")
	writeExercise(t, langDir, "problem_0003", "")

	for _, id := range []string{"1", "0001", "problem_0001", "two-sum", "Two-Sum", " 1 "} {
		t.Run(id, func(t *testing.T) {
			ex, err := ResolveProblem(langDir, id)
			require.NoError(t, err)
			assert.Equal(t, twoSum, ex.Dir)
			assert.Equal(t, "problem_0001", ex.Name)
			require.NotNil(t, ex.Meta)
			assert.Equal(t, "two-sum", ex.Meta.Slug)
		})
	}

	t.Run("without metadata", func(t *testing.T) {
		ex, err := ResolveProblem(langDir, "3")
		require.NoError(t, err)
		assert.Equal(t, "problem_0003", ex.Name)
		assert.Nil(t, ex.Meta)
	})
}

func TestResolveProblem_ExactDirectoryName(t *testing.T) {
	langDir := filepath.Join(testutil.NewWorkspace(t, "python"), "python")
	writeExercise(t, langDir, "problem_0001", "two-sum")
	scratch := writeExercise(t, langDir, "scratch", "")
	numbered := writeExercise(t, langDir, "1", "")
	testutil.MkdirAll(t, filepath.Join(langDir, ".cache"))

	ex, err := ResolveProblem(langDir, "scratch")
	require.NoError(t, err)
	assert.Equal(t, scratch, ex.Dir)
	assert.Equal(t, "scratch", ex.Name)

	// An existing directory name wins over the numeric id.
	ex, err = ResolveProblem(langDir, "1")
	require.NoError(t, err)
	assert.Equal(t, numbered, ex.Dir)

	ex, err = ResolveProblem(langDir, "0001")
	require.NoError(t, err)
	assert.Equal(t, "problem_0001", ex.Name)

	_, err = ResolveProblem(langDir, ".cache")
	assert.True(t, errors.Is(err, oerrors.ErrProblemNotFound))
}

func TestResolveProblem_NotFound(t *testing.T) {
	langDir := filepath.Join(testutil.NewWorkspace(t, "python"), "python")
	writeExercise(t, langDir, "problem_0001", "two-sum")
	testutil.MkdirAll(t, filepath.Join(langDir, "two-sum"))

	for _, id := range []string{"", "9999", "three-sum", "problem_0042", "0", "-1", "two-sum/.."} {
		t.Run(id, func(t *testing.T) {
			_, err := ResolveProblem(langDir, id)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrProblemNotFound))
		})
	}
}

func TestResolveProblem_AmbiguousSlug(t *testing.T) {
	langDir := filepath.Join(testutil.NewWorkspace(t, "java"), "java")
	writeExercise(t, langDir, "problem_0001", "two-sum")
	writeExercise(t, langDir, "problem_0100", "two-sum")

	_, err := ResolveProblem(langDir, "two-sum")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrProblemNotFound))

	ex, err := ResolveProblem(langDir, "100")
	require.NoError(t, err)
	assert.Equal(t, "problem_0100", ex.Name)
}

func TestExercises(t *testing.T) {
	langDir := filepath.Join(testutil.NewWorkspace(t, "kotlin"), "kotlin")
	writeExercise(t, langDir, "problem_0002", "add-two-numbers")
	writeExercise(t, langDir, "problem_0001", "two-sum")
	testutil.MkdirAll(t, filepath.Join(langDir, "build"))
	testutil.MkdirAll(t, filepath.Join(langDir, "problem_x"))
	testutil.WriteFile(t, langDir, "problem_0003", "file")

	exercises, err := Exercises(langDir)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "problem_0001", exercises[0].Name)
	assert.Equal(t, "problem_0002", exercises[1].Name)
}

func TestIsExerciseDirName(t *testing.T) {
	assert.True(t, IsExerciseDirName("problem_0001"))
	assert.True(t, IsExerciseDirName("problem_12345"))
	assert.False(t, IsExerciseDirName("problem_1"))
	assert.False(t, IsExerciseDirName("problem_"))
	assert.False(t, IsExerciseDirName("problem_abcd"))
	assert.False(t, IsExerciseDirName("0001"))
}

func TestMeta_RoundTripAndModified(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, "TwoSum.ts", "export {}\n")
	testutil.WriteFile(t, dir, "TwoSum.test.ts", "test\n")

	meta := &ExerciseMeta{
		ID:          1,
		Slug:        "two-sum",
		Title:       "Two Sum",
		Difficulty:  problem.DifficultyEasy,
		Language:    "typescript",
		GeneratedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Files: map[string]string{
			"TwoSum.ts":      HashContent([]byte("export {}\n")),
			"TwoSum.test.ts": HashContent([]byte("test\n")),
		},
	}
	require.NoError(t, WriteMeta(dir, meta))

	got, err := ReadMeta(dir)
	require.NoError(t, err)
	assert.Equal(t, meta, got)
	assert.Empty(t, got.Modified(dir))

	testutil.WriteFile(t, dir, "TwoSum.ts", "export const solved = true\n")
	assert.Equal(t, []string{"TwoSum.ts"}, got.Modified(dir))
}

func TestHashContent(t *testing.T) {
	h := HashContent([]byte("hello"))
	assert.Regexp(t, `^blake3:[0-9a-f]{64}$`, h)
	assert.Equal(t, h, HashContent([]byte("hello")))
	assert.NotEqual(t, h, HashContent([]byte("hello!")))
}
