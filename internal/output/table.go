// Package output provides terminal output utilities.
package output

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue).PaddingRight(2)
	tableCellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

// Table is a borderless listing with one header row.
type Table struct {
	headers []string
	rows    [][]string

	// colStyles style individual cells by column and value.
	colStyles map[int]func(value string) lipgloss.Style
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, colStyles: map[int]func(string) lipgloss.Style{}}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// StyleColumn styles the cells of column col by their value.
func (t *Table) StyleColumn(col int, style func(value string) lipgloss.Style) *Table {
	t.colStyles[col] = style
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if style, ok := t.colStyles[col]; ok && row >= 0 && row < len(t.rows) && col < len(t.rows[row]) {
				return style(t.rows[row][col]).PaddingRight(2)
			}
			return tableCellStyle
		})

	return tbl.String()
}

// ExerciseRow is one line of the exercise listing.
type ExerciseRow struct {
	Language   string `json:"language"`
	Directory  string `json:"directory"`
	ID         int    `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Modified   bool   `json:"modified"`
}

// RenderExerciseTable renders exercises as a table.
func RenderExerciseTable(rows []ExerciseRow) string {
	t := NewTable("LANGUAGE", "ID", "DIRECTORY", "TITLE", "DIFFICULTY", "MODIFIED").
		StyleColumn(4, DifficultyStyle).
		StyleColumn(5, func(string) lipgloss.Style { return StatusStyle(StatusModified) })

	for _, r := range rows {
		id := ""
		if r.ID > 0 {
			id = strconv.Itoa(r.ID)
		}
		modified := ""
		if r.Modified {
			modified = "yes"
		}
		t.Row(r.Language, id, r.Directory, r.Title, r.Difficulty, modified)
	}

	return t.String()
}
