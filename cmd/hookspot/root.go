package main

import (
	"io"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/phyten/hookspot/internal/config"
)

// deps are the process boundaries the command touches.
type deps struct {
	environ func() []string
	stderr  io.Writer
	open    func(path string) error
}

func defaultDeps() deps {
	return deps{
		environ: os.Environ,
		stderr:  os.Stderr,
		open:    browser.OpenFile,
	}
}

type rootFlags struct {
	format         string
	output         string
	category       string
	ext            []string
	exclude        []string
	excludeTypical bool
	jobs           int
	maxFileBytes   int
	color          string
	summary        string
	progress       bool
	noProgress     bool
	logLevel       string
	verbose        bool
	configPath     string
	open           bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultDeps())
}

func newRootCmdWith(d deps) *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "hookspot [dir]",
		Short: "Find WordPress hook calls in PHP sources",
		Long: `hookspot walks a plugin or theme directory, finds calls to the WordPress
action, filter, shortcode and hook API and writes them to a report.

Settings are read from .hookspot.{yaml,yml,toml,json} (searched upwards from
the scanned directory), then HOOKSPOT_* environment variables, then flags.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd, d, f, dir)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.format, "format", "md", "report format: md|csv|ndjson")
	fl.StringVarP(&f.output, "output", "o", "", "report path (default <dir-name>-analysis.<ext>)")
	fl.StringVar(&f.category, "category", "", "only report one category: action|filter|shortcode|hook")
	fl.StringSliceVar(&f.ext, "ext", nil, "file extensions to scan (default .php)")
	fl.StringArrayVar(&f.exclude, "exclude", nil, "skip paths matching this glob (repeatable)")
	fl.BoolVar(&f.excludeTypical, "exclude-typical", false, "skip .git, node_modules, vendor and other VCS directories")
	fl.IntVarP(&f.jobs, "jobs", "j", 1, "files scanned in parallel (0 = number of CPUs)")
	fl.IntVar(&f.maxFileBytes, "max-file-bytes", 0, "skip files larger than N bytes (0 = unlimited)")
	fl.StringVar(&f.color, "color", "auto", "colour the summary: auto|always|never")
	fl.StringVar(&f.summary, "summary", "list", "summary layout: list|table")
	fl.BoolVar(&f.progress, "progress", false, "force the progress line even when stderr is not a terminal")
	fl.BoolVar(&f.noProgress, "no-progress", false, "never draw the progress line")
	fl.StringVar(&f.logLevel, "log-level", "warn", "diagnostics level: debug|info|warn|error")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "shortcut for --log-level debug")
	fl.StringVar(&f.configPath, "config", "", "config file (overrides discovery and "+config.ConfigEnv+")")
	fl.BoolVar(&f.open, "open", false, "open the report after writing it")

	return cmd
}

// flagLayers turns the flags the user actually set into the top
// configuration layer.
func flagLayers(cmd *cobra.Command, f *rootFlags) (config.ScanConfig, config.ReportConfig) {
	var sc config.ScanConfig
	var rc config.ReportConfig
	changed := cmd.Flags().Changed

	if changed("category") {
		sc.Category = &f.category
	}
	if changed("ext") {
		sc.Extensions = &f.ext
	}
	if changed("exclude") {
		sc.Excludes = &f.exclude
	}
	if changed("exclude-typical") {
		sc.ExcludeTypical = &f.excludeTypical
	}
	if changed("jobs") {
		sc.Jobs = &f.jobs
	}
	if changed("max-file-bytes") {
		sc.MaxFileBytes = &f.maxFileBytes
	}

	if changed("format") {
		rc.Format = &f.format
	}
	if changed("output") {
		rc.Output = &f.output
	}
	if changed("color") {
		rc.Color = &f.color
	}
	if changed("summary") {
		rc.Summary = &f.summary
	}
	switch {
	case changed("log-level"):
		rc.LogLevel = &f.logLevel
	case f.verbose:
		debug := "debug"
		rc.LogLevel = &debug
	}
	return sc, rc
}
