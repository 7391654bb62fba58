package engine

import (
	"github.com/phyten/hookspot/internal/model"
)

// DefaultExtension is the source suffix scanned when none is configured.
const DefaultExtension = ".php"

// TypicalExcludes are directory names skipped when ExcludeTypical is set.
var TypicalExcludes = []string{".git", ".hg", ".svn", "node_modules", "vendor"}

// Logger receives diagnostics about files that were skipped.
type Logger interface {
	Debugf(format string, args ...any)
}

// Options は実行オプション
type Options struct {
	Root           string
	Extensions     []string
	Excludes       []string
	ExcludeTypical bool
	// Category restricts the result to one category name; empty keeps all.
	Category     string
	Jobs         int
	MaxFileBytes int
	Progress     bool
	Logger       Logger `json:"-"`
}

// SkippedFile records a path the walker could not scan.
type SkippedFile struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Result は出力
type Result struct {
	Root         string        `json:"root"`
	Project      string        `json:"project"`
	Matches      []model.Match `json:"matches"`
	Total        int           `json:"total"`
	FilesScanned int           `json:"files_scanned"`
	Skipped      []SkippedFile `json:"skipped,omitempty"`
	ElapsedMS    int64         `json:"elapsed_ms"`
}
