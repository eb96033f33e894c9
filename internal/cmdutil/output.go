package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	oerrors "github.com/leetkick/leetkick/internal/errors"
	"github.com/leetkick/leetkick/internal/exercise"
	"github.com/leetkick/leetkick/internal/output"
	"github.com/leetkick/leetkick/internal/problem"
)

// PrintError writes err to w. A DetailError anywhere in the chain is printed
// in full, preceded by the outer context when there is one.
func PrintError(w io.Writer, err error) {
	var detail *oerrors.DetailError
	if !errors.As(err, &detail) {
		fmt.Fprintln(w, "Error:", err)
		return
	}

	msg := err.Error()
	if idx := strings.Index(msg, "Error: "); idx > 0 {
		outer := strings.TrimSuffix(strings.TrimSpace(msg[:idx]), ":")
		fmt.Fprintln(w, StyleContext(outer))
		msg = msg[idx:]
	}
	fmt.Fprint(w, strings.TrimRight(msg, "\n")+"\n")
}

// StyleContext renders the outer wrapping of a detail error.
func StyleContext(s string) string {
	return output.StyleDim.Render(s)
}

// WriteExerciseResult writes the outcome of a fetch: a header line and the
// generated files.
func WriteExerciseResult(w io.Writer, p *problem.Problem, lang string, res *exercise.Result) {
	verb := "Created"
	status := output.StatusCreated
	if res.Overwritten {
		verb = "Overwrote"
		status = output.StatusOverwritten
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%s %s %s in %s",
		verb,
		output.FormatProblem(p.ID, p.Title),
		output.DifficultyStyle(string(p.Difficulty)).Render("("+string(p.Difficulty)+")"),
		output.StyleNoun.Render(filepath.Join(lang, res.Name)))))

	for _, f := range res.Files {
		fileStatus := status
		if slices.Contains(res.Unchanged, f) {
			fileStatus = output.StatusUnchanged
		}
		fmt.Fprintln(w, "  "+output.FormatFileLine(f, fileStatus))
	}
}

// WriteConfigFiles writes the config files copied into a new language workspace.
func WriteConfigFiles(w io.Writer, lang string, files []string) {
	tree := make(map[string]string, len(files))
	for _, f := range files {
		tree[f] = "config"
	}
	fmt.Fprint(w, output.RenderFileTree(lang, tree))
}
