package opts

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/hookspot/internal/catalog"
	"github.com/phyten/hookspot/internal/engine"
)

const (
	maxJobs = 64
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the baseline scan options: sequential, .php only.
func Defaults(root string) engine.Options {
	return engine.Options{
		Root:           root,
		Extensions:     []string{engine.DefaultExtension},
		Excludes:       nil,
		ExcludeTypical: false,
		Category:       "",
		Jobs:           1,
		MaxFileBytes:   0,
		Progress:       false,
	}
}

// MaxJobs caps Jobs to what the machine can usefully run.
func MaxJobs() int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	if n > maxJobs {
		n = maxJobs
	}
	return n
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	if strings.TrimSpace(o.Root) == "" {
		o.Root = "."
	}

	o.Category = strings.ToLower(strings.TrimSpace(o.Category))
	if o.Category != "" {
		if _, err := catalog.ParseCategory(o.Category); err != nil {
			return fmt.Errorf("invalid --category: %s", o.Category)
		}
	}

	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}
	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}

	exts, err := NormalizeExtensions(o.Extensions)
	if err != nil {
		return err
	}
	o.Extensions = exts

	o.Excludes = trimSlice(o.Excludes)
	for _, p := range o.Excludes {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("invalid --exclude %q: %w", p, err)
		}
	}
	return nil
}

// NormalizeExtensions lower-cases extensions, adds the leading dot and drops
// duplicates. An empty list becomes the default extension.
func NormalizeExtensions(values []string) ([]string, error) {
	values = trimSlice(values)
	if len(values) == 0 {
		return []string{engine.DefaultExtension}, nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		ext := strings.ToLower(raw)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if ext == "." || strings.ContainsAny(ext[1:], `./\`) {
			return nil, fmt.Errorf("invalid --ext: %s", raw)
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out, nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
