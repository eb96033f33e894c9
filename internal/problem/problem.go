// Package problem defines the problem record consumed by the scaffolding core
// and the interface of its metadata source.
package problem

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/leetkick/leetkick/internal/problem Source

import (
	"context"
	"strconv"
	"strings"
)

// Difficulty is the difficulty label reported by the metadata source.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Problem is a resolved problem record.
type Problem struct {
	// ID is the stable numeric (frontend) id, e.g. 1.
	ID int `json:"id"`

	// Slug is the URL slug, e.g. "two-sum".
	Slug string `json:"slug"`

	// Title is the display title, e.g. "Two Sum".
	Title string `json:"title"`

	// Difficulty is the difficulty label.
	Difficulty Difficulty `json:"difficulty"`

	// Description is the plain-text problem statement.
	Description string `json:"description"`

	// Snippets maps a source language slug (e.g. "typescript", "python3")
	// to its default code body.
	Snippets map[string]string `json:"snippets,omitempty"`
}

// Snippet returns the default code body for a source language slug.
func (p *Problem) Snippet(langSlug string) string {
	if p.Snippets == nil {
		return ""
	}
	return p.Snippets[langSlug]
}

// Source fetches problem metadata by numeric id or slug.
type Source interface {
	Fetch(ctx context.Context, identifier string) (*Problem, error)
}

// ParseID parses a bare or zero-padded numeric identifier.
// The second result is false when identifier is not purely numeric.
func ParseID(identifier string) (int, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return 0, false
	}
	for _, r := range identifier {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(identifier)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
