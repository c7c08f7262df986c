package output

import "strings"

// Format specifies how list output is rendered.
type Format string

const (
	// FormatText prints a heading and one bullet per template.
	FormatText Format = "text"

	// FormatTable prints a bordered table.
	FormatTable Format = "table"

	// FormatJSON prints a JSON array.
	FormatJSON Format = "json"

	// FormatYAML prints a YAML sequence.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. The second result is false
// when s names no known format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, true
	case "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return Format(s), false
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"text", "table", "json", "yaml"}
}
