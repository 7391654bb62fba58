package config

import "strings"

// MergeScan applies layers over base in order; later layers win.
func MergeScan(base ScanSettings, layers ...ScanConfig) ScanSettings {
	out := base
	for _, layer := range layers {
		out.Category = ResolveAndTrim(out.Category, layer.Category)
		out.Extensions = ResolveStrings(out.Extensions, layer.Extensions)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.ExcludeTypical = ResolveBool(out.ExcludeTypical, layer.ExcludeTypical)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
	}
	return out
}

// MergeReport applies layers over base in order. Blank format, colour,
// summary and log level fall back to the defaults.
func MergeReport(base ReportSettings, layers ...ReportConfig) ReportSettings {
	out := base
	for _, layer := range layers {
		out.Format = ResolveAndTrim(out.Format, layer.Format)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Summary = ResolveAndTrim(out.Summary, layer.Summary)
		out.LogLevel = ResolveAndTrim(out.LogLevel, layer.LogLevel)
	}
	def := DefaultReportSettings()
	if strings.TrimSpace(out.Format) == "" {
		out.Format = def.Format
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = def.Color
	}
	if strings.TrimSpace(out.Summary) == "" {
		out.Summary = def.Summary
	}
	if strings.TrimSpace(out.LogLevel) == "" {
		out.LogLevel = def.LogLevel
	}
	return out
}
