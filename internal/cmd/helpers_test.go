package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/leetkick/leetkick/internal/problem"
	"github.com/leetkick/leetkick/internal/testutil"
)

// execute runs c with args and returns what it wrote to stdout and stderr.
func execute(c *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)
	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateHome points HOME and the config override at a fresh directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := testutil.TempDir(t)
	t.Setenv("HOME", home)
	t.Setenv("LEETKICK_CONFIG", "")
	t.Setenv("LEETKICK_TEMPLATES", "")
	return home
}

// enterWorkspace creates a workspace with the given language directories and
// changes into it.
func enterWorkspace(t *testing.T, languages ...string) string {
	t.Helper()
	isolateHome(t)
	root := testutil.NewWorkspace(t, languages...)
	testutil.Chdir(t, root)
	return root
}

// writeTemplates creates an on-disk template store with a shell-tested
// language named "sh".
func writeTemplates(t *testing.T, testScript string) string {
	t.Helper()
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, "languages.yaml", `
sh:
  snippet: bash
  test:
    command: sh
    args: [-c, '`+testScript+`', __PROBLEM_DIR__]
`)
	testutil.WriteFile(t, dir, filepath.Join("sh", "exercise_template.sh"), "# __PROBLEM_TITLE__\n__PROBLEM_DEFAULT_CODE__\n")
	testutil.WriteFile(t, dir, filepath.Join("sh", "run.cfg"), "verbose=1\n")
	return dir
}

func twoSum() *problem.Problem {
	return &problem.Problem{
		ID:          1,
		Slug:        "two-sum",
		Title:       "Two Sum",
		Difficulty:  problem.DifficultyEasy,
		Description: "Given an array of integers nums and an integer target, return indices of the two numbers.",
		Snippets: map[string]string{
			"typescript": "function twoSum(nums: number[], target: number): number[] {\n\n};",
			"python3":    "class Solution:\n    def twoSum(self, nums: List[int], target: int) -> List[int]:\n        ",
			"bash":       "two_sum() {\n}",
		},
	}
}
