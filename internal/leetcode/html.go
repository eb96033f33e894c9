package leetcode

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy = bluemonday.StrictPolicy()

	// blockBreaks turns block-level markup into line breaks before tags are stripped.
	blockBreaks = strings.NewReplacer(
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
		"</p>", "\n\n",
		"</pre>", "\n\n",
		"</li>", "\n",
		"<li>", "- ",
		"<sup>", "^",
	)

	blankLines    = regexp.MustCompile(`\n{3,}`)
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
)

// HTMLToText converts a problem statement to plain text.
func HTMLToText(s string) string {
	if s == "" {
		return ""
	}
	s = blockBreaks.Replace(s)
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = trailingSpace.ReplaceAllString(s, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
