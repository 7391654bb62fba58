package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/hookspot/internal/catalog"
	"github.com/phyten/hookspot/internal/model"
	"github.com/phyten/hookspot/internal/scan"
	"github.com/phyten/hookspot/internal/util"
)

const fallbackProject = "hookspot"

// Run は opts.Root 以下のソースファイルを走査し、フック呼び出しの一覧を返します。
//
// Files that cannot be read are recorded in Result.Skipped and never fail the
// run. An unusable root, an invalid category or a cancelled context does.
func Run(ctx context.Context, cat *catalog.Catalog, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Jobs <= 0 {
		opts.Jobs = 1
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{DefaultExtension}
	}
	var only *catalog.Category
	if strings.TrimSpace(opts.Category) != "" {
		c, err := catalog.ParseCategory(opts.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid --category: %w", err)
		}
		only = &c
	}

	root, err := ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	opts.Root = root

	files, skipped, err := collectFiles(opts)
	if err != nil {
		return nil, err
	}

	s := scan.New(cat)
	fo := scan.FileOptions{MaxBytes: int64(opts.MaxFileBytes)}
	slots := make([]fileResult, len(files))
	prog := util.NewProgress(len(files), opts.Progress)
	var progMu sync.Mutex
	done := 0
	tick := func() {
		progMu.Lock()
		done++
		prog.Update(done)
		progMu.Unlock()
	}

	if opts.Jobs == 1 {
		for i, f := range files {
			if err := ctx.Err(); err != nil {
				prog.Done()
				return nil, err
			}
			slots[i] = scanOne(s, f, fo)
			tick()
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Jobs)
		for i, f := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				slots[i] = scanOne(s, f, fo)
				tick()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			prog.Done()
			return nil, err
		}
	}
	prog.Done()

	res := &Result{Root: root, Project: ProjectName(root), FilesScanned: len(files)}
	res.Skipped = skipped
	for _, slot := range slots {
		if slot.err != nil {
			res.Skipped = append(res.Skipped, SkippedFile{File: slot.path, Reason: slot.err.Error()})
			logf(opts.Logger, "skip %s: %v", slot.path, slot.err)
			continue
		}
		res.Matches = append(res.Matches, slot.matches...)
	}
	if only != nil {
		res.Matches = FilterCategory(res.Matches, *only)
	}
	res.Total = len(res.Matches)
	res.ElapsedMS = time.Since(start).Milliseconds()
	return res, nil
}

type fileResult struct {
	path    string
	matches []model.Match
	err     error
}

func scanOne(s *scan.Scanner, path string, fo scan.FileOptions) fileResult {
	matches, err := s.ScanFile(path, fo)
	return fileResult{path: path, matches: matches, err: err}
}

// FilterCategory keeps the matches of one category, preserving order.
func FilterCategory(matches []model.Match, c catalog.Category) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if m.Category == c {
			out = append(out, m)
		}
	}
	return out
}

// ResolveRoot makes root absolute and checks that it is a directory.
func ResolveRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("resolve %s: not a directory", root)
	}
	return abs, nil
}

// ProjectName derives the report label from the scanned directory.
func ProjectName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return fallbackProject
	}
	return base
}

func logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.Debugf(format, args...)
}
