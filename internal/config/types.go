package config

import (
	"github.com/phyten/hookspot/internal/engine"
)

// ScanConfig holds the walker settings of one configuration layer. A nil
// field means the layer leaves the value alone.
type ScanConfig struct {
	Category       *string   `yaml:"category" toml:"category" json:"category"`
	Extensions     *[]string `yaml:"ext" toml:"ext" json:"ext"`
	Excludes       *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	ExcludeTypical *bool     `yaml:"exclude_typical" toml:"exclude_typical" json:"exclude_typical"`
	Jobs           *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes   *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
}

// ReportConfig holds the output settings of one configuration layer.
type ReportConfig struct {
	Format   *string `yaml:"format" toml:"format" json:"format"`
	Output   *string `yaml:"output" toml:"output" json:"output"`
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Summary  *string `yaml:"summary" toml:"summary" json:"summary"`
	LogLevel *string `yaml:"log_level" toml:"log_level" json:"log_level"`
}

type Config struct {
	Scan   ScanConfig   `yaml:"scan" toml:"scan" json:"scan"`
	Report ReportConfig `yaml:"report" toml:"report" json:"report"`
}

type ScanSettings struct {
	Category       string
	Extensions     []string
	Excludes       []string
	ExcludeTypical bool
	Jobs           int
	MaxFileBytes   int
}

type ReportSettings struct {
	Format   string
	Output   string
	Color    string
	Summary  string
	LogLevel string
}

func ScanSettingsFromOptions(opts engine.Options) ScanSettings {
	return ScanSettings{
		Category:       opts.Category,
		Extensions:     cloneStrings(opts.Extensions),
		Excludes:       cloneStrings(opts.Excludes),
		ExcludeTypical: opts.ExcludeTypical,
		Jobs:           opts.Jobs,
		MaxFileBytes:   opts.MaxFileBytes,
	}
}

func (s ScanSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Category = s.Category
	opts.Extensions = cloneStrings(s.Extensions)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.ExcludeTypical = s.ExcludeTypical
	opts.Jobs = s.Jobs
	opts.MaxFileBytes = s.MaxFileBytes
}

// DefaultReportSettings writes Markdown next to the working directory with
// automatic colour and the list summary. Output stays empty so the caller
// can derive "<project>-analysis.<ext>".
func DefaultReportSettings() ReportSettings {
	return ReportSettings{
		Format:   "md",
		Output:   "",
		Color:    "auto",
		Summary:  "list",
		LogLevel: "warn",
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
