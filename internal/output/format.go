package output

import "strings"

// OutputFormat specifies the output format for listing commands.
type OutputFormat string

const (
	// FormatTable outputs a styled table.
	FormatTable OutputFormat = "table"

	// FormatJSON outputs JSON.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// Returns FormatTable if the string is empty or invalid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	default:
		return FormatTable
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json"}
}
