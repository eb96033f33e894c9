package templates

import (
	"sort"
	"strings"
)

// Placeholder tokens recognized by Render.
const (
	TokenID          = "__PROBLEM_ID__"
	TokenTitle       = "__PROBLEM_TITLE__"
	TokenDifficulty  = "__PROBLEM_DIFFICULTY__"
	TokenDescription = "__PROBLEM_DESC__"
	TokenFuncName    = "__FORMATTED_NAME__"
	TokenDefaultCode = "__PROBLEM_DEFAULT_CODE__"
	TokenFileName    = "__EXERCISE_FILE_NAME__"
	TokenPackage     = "__PACKAGE_NAME__"
	TokenClassName   = "__CLASS_NAME__"
	TokenProblemDir  = "__PROBLEM_DIR__"
)

var knownTokens = map[string]bool{
	TokenID:          true,
	TokenTitle:       true,
	TokenDifficulty:  true,
	TokenDescription: true,
	TokenFuncName:    true,
	TokenDefaultCode: true,
	TokenFileName:    true,
	TokenPackage:     true,
	TokenClassName:   true,
	TokenProblemDir:  true,
}

// Tokens returns the recognized placeholder tokens, sorted.
func Tokens() []string {
	out := make([]string, 0, len(knownTokens))
	for t := range knownTokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// IsToken reports whether s is a recognized placeholder token.
func IsToken(s string) bool {
	return knownTokens[s]
}

// Bindings maps placeholder tokens to replacement values.
type Bindings map[string]string

// With returns a copy of b with token bound to value.
func (b Bindings) With(token, value string) Bindings {
	out := make(Bindings, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	out[token] = value
	return out
}

// Render replaces every occurrence of each bound token in text with its value.
// Replacement is a single left-to-right pass, so a value that itself contains a
// token is emitted verbatim. Keys that are not recognized tokens are ignored
// and unbound tokens are left in place.
func Render(text string, b Bindings) string {
	keys := make([]string, 0, len(b))
	for k := range b {
		if knownTokens[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return text
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, b[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
