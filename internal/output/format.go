// Package output renders scan results as report documents.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/hookspot/internal/model"
)

// Format is a report file format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatCSV      Format = "csv"
	FormatNDJSON   Format = "ndjson"
)

// ParseFormat validates and lower-cases a --format value.
func ParseFormat(value string) (Format, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "ndjson", "jsonl":
		return FormatNDJSON, nil
	default:
		return "", fmt.Errorf("invalid --format: %s (want md|csv|ndjson)", value)
	}
}

// Extension is the file suffix used for default output names.
func (f Format) Extension() string {
	return string(f)
}

// DefaultPath returns "<project>-analysis.<ext>".
func DefaultPath(project string, f Format) string {
	return fmt.Sprintf("%s-analysis.%s", project, f.Extension())
}

// Write renders matches in format f.
func Write(w io.Writer, f Format, matches []model.Match, project string) error {
	switch f {
	case FormatMarkdown:
		return WriteMarkdown(w, matches, project)
	case FormatCSV:
		return WriteCSV(w, matches, project)
	case FormatNDJSON:
		return WriteNDJSON(w, matches, project)
	default:
		return fmt.Errorf("unsupported format: %s", f)
	}
}
