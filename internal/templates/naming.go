package templates

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProblemDirPrefix prefixes every exercise directory name.
const ProblemDirPrefix = "problem_"

// ProblemDirName returns the exercise directory name for a problem id,
// zero-padded to at least four digits.
func ProblemDirName(id int) string {
	return fmt.Sprintf("%s%04d", ProblemDirPrefix, id)
}

// slugWords splits a slug such as "two-sum" or "Two Sum" into lowercase words.
func slugWords(slug string) []string {
	return strings.FieldsFunc(strings.ToLower(slug), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// PascalCase converts "two-sum" to "TwoSum".
func PascalCase(slug string) string {
	var b strings.Builder
	for _, w := range slugWords(slug) {
		b.WriteString(upperFirst(w))
	}
	return SanitizeIdentifier(b.String())
}

// upperFirst upper-cases the first rune of w.
func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// CamelCase converts "two-sum" to "twoSum".
func CamelCase(slug string) string {
	words := slugWords(slug)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(upperFirst(w))
	}
	return SanitizeIdentifier(b.String())
}

// SnakeCase converts "two-sum" to "two_sum".
func SnakeCase(slug string) string {
	return SanitizeIdentifier(strings.Join(slugWords(slug), "_"))
}

// SanitizeIdentifier makes name usable as an identifier in every supported
// language: a leading digit gets an underscore prefix and an empty name
// becomes "solution".
func SanitizeIdentifier(name string) string {
	if name == "" {
		return "solution"
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}

// FileName applies a naming style to a slug.
func FileName(slug string, style NamingStyle) string {
	switch style {
	case NamingSnake:
		return SnakeCase(slug)
	case NamingCamel:
		return CamelCase(slug)
	default:
		return PascalCase(slug)
	}
}

// functionPatterns find the entry point name in a default code body.
var functionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfunction\s+([A-Za-z_$][\w$]*)\s*\(`),
	regexp.MustCompile(`\b(?:var|let|const)\s+([A-Za-z_$][\w$]*)\s*=\s*function\b`),
	regexp.MustCompile(`\bdef\s+([A-Za-z_]\w*)\s*\(`),
	regexp.MustCompile(`\bfun\s+([A-Za-z_]\w*)\s*\(`),
	regexp.MustCompile(`\bpublic\s+(?:static\s+)?[\w<>\[\], ]+?\s+([A-Za-z_]\w*)\s*\(`),
}

// FunctionName extracts the entry point name from a default code body,
// falling back to the camelCase slug.
func FunctionName(code, slug string) string {
	for _, re := range functionPatterns {
		if m := re.FindStringSubmatch(code); m != nil {
			return m[1]
		}
	}
	return CamelCase(slug)
}
