package config

import (
	"strings"

	"github.com/phyten/hookspot/internal/logger"
	"github.com/phyten/hookspot/internal/output"
	"github.com/phyten/hookspot/internal/summary"
	"github.com/phyten/hookspot/internal/termcolor"
)

// NormalizeReport canonicalises the merged report settings and rejects
// unknown values.
func NormalizeReport(values ReportSettings) (ReportSettings, error) {
	f, err := output.ParseFormat(values.Format)
	if err != nil {
		return values, err
	}
	values.Format = string(f)

	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()

	style, err := summary.ParseStyle(values.Summary)
	if err != nil {
		return values, err
	}
	values.Summary = string(style)

	level, err := logger.ParseLevel(values.LogLevel)
	if err != nil {
		return values, err
	}
	values.LogLevel = level.String()

	values.Output = strings.TrimSpace(values.Output)
	return values, nil
}
