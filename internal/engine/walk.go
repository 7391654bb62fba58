package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// collectFiles lists the files to scan in lexical walk order. Unreadable
// sub-directories are returned as skipped; an unreadable root is an error.
func collectFiles(opts Options) ([]string, []SkippedFile, error) {
	var files []string
	var skipped []SkippedFile
	excludes := opts.Excludes
	if opts.ExcludeTypical {
		excludes = append(append([]string(nil), excludes...), TypicalExcludes...)
	}

	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == opts.Root {
				return fmt.Errorf("read %s: %w", path, err)
			}
			skipped = append(skipped, SkippedFile{File: path, Reason: err.Error()})
			logf(opts.Logger, "skip %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == opts.Root {
			return nil
		}
		rel, relErr := filepath.Rel(opts.Root, path)
		if relErr != nil {
			rel = path
		}
		if isExcluded(filepath.ToSlash(rel), excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !HasExtension(path, opts.Extensions) {
			return nil
		}
		// Symlinked files are followed; symlinked directories are not walked.
		if d.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil {
				skipped = append(skipped, SkippedFile{File: path, Reason: statErr.Error()})
				logf(opts.Logger, "skip %s: %v", path, statErr)
				return nil
			}
			if info.Mode().IsRegular() {
				files = append(files, path)
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return files, skipped, nil
}

// HasExtension reports whether path ends in one of exts, ignoring case.
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, want := range exts {
		if strings.ToLower(want) == ext {
			return true
		}
	}
	return false
}

func isExcluded(rel string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	base := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		base = rel[i+1:]
	}
	for _, p := range patterns {
		p = strings.TrimSuffix(filepath.ToSlash(p), "/")
		if p == "" {
			continue
		}
		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}
