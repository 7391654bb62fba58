package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyten/hookspot/internal/catalog"
	"github.com/phyten/hookspot/internal/config"
	"github.com/phyten/hookspot/internal/engine"
	engineopts "github.com/phyten/hookspot/internal/engine/opts"
	"github.com/phyten/hookspot/internal/filelock"
	"github.com/phyten/hookspot/internal/logger"
	"github.com/phyten/hookspot/internal/output"
	"github.com/phyten/hookspot/internal/summary"
	"github.com/phyten/hookspot/internal/termcolor"
	"github.com/phyten/hookspot/internal/util"
)

type settings struct {
	scan   engine.Options
	report config.ReportSettings
	source string
}

// resolveSettings layers defaults, config file, environment and flags.
func resolveSettings(cmd *cobra.Command, f *rootFlags, env map[string]string, dir string) (settings, error) {
	getenv := func(k string) string { return env[k] }

	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return settings{}, err
	}

	explicit := f.configPath
	if explicit == "" {
		explicit = getenv(config.ConfigEnv)
	}
	path, where, err := config.Find(dir, explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return settings{}, fmt.Errorf("config: %w", err)
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}
	flagScan, flagReport := flagLayers(cmd, f)

	opts := engineopts.Defaults(dir)
	merged := config.MergeScan(config.ScanSettingsFromOptions(opts), fileCfg.Scan, envCfg.Scan, flagScan)
	merged.ApplyToOptions(&opts)
	if opts.Jobs == 0 {
		opts.Jobs = engineopts.MaxJobs()
	}
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return settings{}, err
	}

	report := config.MergeReport(config.DefaultReportSettings(), fileCfg.Report, envCfg.Report, flagReport)
	report, err = config.NormalizeReport(report)
	if err != nil {
		return settings{}, err
	}

	s := settings{scan: opts, report: report}
	if path != "" {
		s.source = fmt.Sprintf("%s (%s)", path, where)
	}
	return s, nil
}

func run(cmd *cobra.Command, d deps, f *rootFlags, dir string) error {
	env := termcolor.EnvMap(d.environ())
	s, err := resolveSettings(cmd, f, env, dir)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(s.report.LogLevel)
	if err != nil {
		return err
	}
	log := logger.NewConsole(d.stderr, level)
	mode, err := termcolor.ParseMode(s.report.Color)
	if err != nil {
		return err
	}
	if mode == termcolor.ModeNever {
		log.SetColor(false)
	}
	if s.source != "" {
		log.Debugf("config: %s", s.source)
	}

	opts := s.scan
	opts.Progress = util.ShouldShowProgress(f.progress, f.noProgress)
	opts.Logger = log

	res, err := engine.Run(cmd.Context(), catalog.Default(), opts)
	if err != nil {
		return err
	}
	log.Infof("scanned %d file(s) under %s in %dms", res.FilesScanned, res.Root, res.ElapsedMS)

	format := output.Format(s.report.Format)
	outPath := s.report.Output
	if outPath == "" {
		outPath = output.DefaultPath(res.Project, format)
	}
	var buf bytes.Buffer
	if err := output.Write(&buf, format, res.Matches, res.Project); err != nil {
		return fmt.Errorf("render %s report: %w", format, err)
	}
	if err := filelock.WriteReport(outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Infof("wrote %d record(s) to %s", res.Total, outPath)

	stdout := cmd.OutOrStdout()
	err = summary.Render(stdout, summary.Aggregate(res.Matches), summary.RenderOptions{
		Project:    res.Project,
		OutputPath: outPath,
		Skipped:    len(res.Skipped),
		Style:      summary.Style(s.report.Summary),
		Color:      termcolor.Resolve(mode, stdout, env),
	})
	if err != nil {
		return err
	}

	if f.open {
		if err := d.open(outPath); err != nil {
			log.Warnf("open %s: %v", outPath, err)
		}
	}
	return nil
}
