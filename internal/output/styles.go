package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: languages, problem directories, slugs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status and easy problems.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "overwritten" and "modified" statuses and medium problems.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for hard problems and the failure cross.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (languages, directories, slugs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusUnchanged   = "unchanged"
	StatusModified    = "modified"
)

// StatusStyle returns the lipgloss style for a given file status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOverwritten, StatusModified:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// DifficultyStyle colors a LeetCode difficulty label.
func DifficultyStyle(difficulty string) lipgloss.Style {
	switch strings.ToLower(difficulty) {
	case "easy":
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case "medium":
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case "hard":
		return lipgloss.NewStyle().Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth is the minimum width for the file path column
// before the status suffix.
const minFileColumnWidth = 40

// FormatFileLine renders a generated file path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message for stdout output.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatProblem renders "<id>. <title>" with the title styled as a noun.
func FormatProblem(id int, title string) string {
	return fmt.Sprintf("%d. %s", id, StyleNoun.Render(title))
}
