package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leetkick/leetkick/internal/cmdtypes"
)

func TestLanguages(t *testing.T) {
	enterWorkspace(t, "python")

	stdout, _, err := execute(NewLanguagesCmd(&cmdtypes.GlobalConfig{}), "-o", "json")
	require.NoError(t, err)

	var rows []languageRow
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 4)

	byName := map[string]languageRow{}
	for _, r := range rows {
		byName[r.Language] = r
	}
	assert.True(t, byName["python"].Added)
	assert.False(t, byName["java"].Added)
	assert.Equal(t, "npx vitest run __PROBLEM_DIR__", byName["typescript"].Test)
}

func TestLanguages_OutsideWorkspace(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	stdout, _, err := execute(NewLanguagesCmd(&cmdtypes.GlobalConfig{}))
	require.NoError(t, err)
	for _, lang := range []string{"java", "kotlin", "python", "typescript"} {
		assert.Contains(t, stdout, lang)
	}
}
