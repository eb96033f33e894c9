package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal. Without a TTY the
// markdown is returned as-is so piped output stays plain.
func RenderMarkdown(md string, wordWrap int) (string, error) {
	if !IsTTY() {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
