package scan

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/phyten/hookspot/internal/model"
)

var (
	// ErrNotText marks content that is not valid UTF-8 text.
	ErrNotText = errors.New("not a text file")
	// ErrTooLarge marks files above the configured byte limit.
	ErrTooLarge = errors.New("file exceeds size limit")
)

// FileOptions tunes ScanFile. The zero value imposes no size limit.
type FileOptions struct {
	MaxBytes int64
}

// ScanFile reads path and scans it line by line.
func (s *Scanner) ScanFile(path string, fo FileOptions) ([]model.Match, error) {
	if fo.MaxBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() > fo.MaxBytes {
			return nil, fmt.Errorf("%s: %w (%d > %d bytes)", path, ErrTooLarge, info.Size(), fo.MaxBytes)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.ScanBytes(path, data)
}

// ScanBytes scans data as the contents of path. Matches are ordered by line,
// then by discovery order within the line.
func (s *Scanner) ScanBytes(path string, data []byte) ([]model.Match, error) {
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotText)
	}
	var out []model.Match
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for _, m := range s.ScanLine(line) {
			m.File = path
			m.Line = i + 1
			out = append(out, m)
		}
	}
	return out, nil
}
