package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/phyten/hookspot/internal/model"
)

// CSVHeader is the column order consumed by downstream tooling.
var CSVHeader = []string{
	"project_name",
	"category",
	"function",
	"function_type",
	"hook_name",
	"file_path",
	"line_number",
	"original_line",
	"highlighted_line",
}

// WriteCSV renders one header row and one row per match, in order.
func WriteCSV(w io.Writer, matches []model.Match, project string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, m := range matches {
		row := []string{
			project,
			m.Category.String(),
			m.Function,
			m.FunctionType,
			m.HookName,
			m.File,
			strconv.Itoa(m.Line),
			m.OriginalLine,
			m.HighlightedLine,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
