package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/exercise"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
)

func TestPrintError_Plain(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestPrintError_Detail(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("fetching exercise: %w", oerrors.NewExerciseExistsError("/ws/python/problem_0001"))
	PrintError(&buf, err)

	out := buf.String()
	assert.Contains(t, out, "fetching exercise")
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "/ws/python/problem_0001")
}

func TestWriteExerciseResult(t *testing.T) {
	var buf bytes.Buffer
	p := &problem.Problem{ID: 1, Title: "Two Sum", Difficulty: problem.DifficultyEasy}
	WriteExerciseResult(&buf, p, "python", &exercise.Result{
		Name:  "problem_0001",
		Files: []string{"test_two_sum.py", "two_sum.py"},
	})

	out := buf.String()
	assert.Contains(t, out, "Created")
	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "two_sum.py")
	assert.Contains(t, out, "test_two_sum.py")
}

func TestWriteExerciseResult_Overwritten(t *testing.T) {
	var buf bytes.Buffer
	p := &problem.Problem{ID: 1, Title: "Two Sum", Difficulty: problem.DifficultyEasy}
	WriteExerciseResult(&buf, p, "python", &exercise.Result{
		Name:        "problem_0001",
		Files:       []string{"test_two_sum.py", "two_sum.py"},
		Overwritten: true,
		Unchanged:   []string{"test_two_sum.py"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Overwrote")
	assert.Contains(t, lines[1], "test_two_sum.py")
	assert.Contains(t, lines[1], output.StatusUnchanged)
	assert.Contains(t, lines[2], "two_sum.py")
	assert.Contains(t, lines[2], output.StatusOverwritten)
}
