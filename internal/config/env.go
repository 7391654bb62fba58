package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/hookspot/internal/engine/opts"
)

// EnvPrefix namespaces every environment variable read by FromEnv.
const EnvPrefix = "HOOKSPOT_"

// ConfigEnv names an explicit config file, like --config.
const ConfigEnv = EnvPrefix + "CONFIG"

// FromEnv reads the HOOKSPOT_* variables. Empty values are ignored; every
// malformed value is reported together.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	lookup := func(name string) (string, string) {
		key := EnvPrefix + name
		return key, strings.TrimSpace(getenv(key))
	}
	setString := func(target **string, name string) {
		_, raw := lookup(name)
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, name string) {
		_, raw := lookup(name)
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if list == nil {
			list = []string{}
		}
		*target = &list
	}
	setBool := func(target **bool, name string) {
		key, raw := lookup(name)
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, name string) {
		key, raw := lookup(name)
		if raw == "" {
			return
		}
		// Upper bounds are left to NormalizeAndValidate so that every layer
		// reports the same message.
		v, err := engineopts.ParseIntInRange(raw, key, 0, math.MaxInt)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setString(&cfg.Scan.Category, "CATEGORY")
	setList(&cfg.Scan.Extensions, "EXT")
	setList(&cfg.Scan.Excludes, "EXCLUDE")
	setBool(&cfg.Scan.ExcludeTypical, "EXCLUDE_TYPICAL")
	setInt(&cfg.Scan.Jobs, "JOBS")
	setInt(&cfg.Scan.MaxFileBytes, "MAX_FILE_BYTES")

	setString(&cfg.Report.Format, "FORMAT")
	setString(&cfg.Report.Output, "OUTPUT")
	setString(&cfg.Report.Color, "COLOR")
	setString(&cfg.Report.Summary, "SUMMARY")
	setString(&cfg.Report.LogLevel, "LOG_LEVEL")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
