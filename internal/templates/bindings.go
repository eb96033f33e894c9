package templates

import (
	"strconv"
	"strings"

	"github.com/leetkick/leetkick/internal/problem"
)

// BindingsFor computes the placeholder values for rendering p in a language.
func BindingsFor(p *problem.Problem, lang LanguageSpec) Bindings {
	code := p.Snippet(lang.Snippet)
	dir := ProblemDirName(p.ID)

	pkg := ""
	if lang.Package {
		pkg = dir
	}

	return Bindings{
		TokenID:          strconv.Itoa(p.ID),
		TokenTitle:       p.Title,
		TokenDifficulty:  string(p.Difficulty),
		TokenDescription: commentSafe(p.Description),
		TokenFuncName:    FunctionName(code, p.Slug),
		TokenDefaultCode: code,
		TokenFileName:    FileName(p.Slug, lang.Naming),
		TokenPackage:     pkg,
		TokenClassName:   PascalCase(p.Slug),
		TokenProblemDir:  dir,
	}
}

// commentSafe keeps free text from terminating the block comment or
// docstring it is rendered into.
func commentSafe(s string) string {
	s = strings.ReplaceAll(s, "*/", "* /")
	s = strings.ReplaceAll(s, `"""`, `'''`)
	return strings.TrimSpace(s)
}
