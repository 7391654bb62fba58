// Package scan applies the hook catalog to lines and files.
package scan

import (
	"regexp"
	"strings"

	"github.com/phyten/hookspot/internal/catalog"
	"github.com/phyten/hookspot/internal/model"
)

var reLiteral = regexp.MustCompile(catalog.LiteralArg)

// Scanner turns text into match records using one catalog.
type Scanner struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Scanner {
	return &Scanner{cat: cat}
}

// ScanLine returns every match in line. File and Line are left zero for the
// caller to fill in. line is used as is; callers trim it first.
func (s *Scanner) ScanLine(line string) []model.Match {
	var out []model.Match
	for _, cat := range catalog.Categories() {
		for _, p := range s.cat.Patterns(cat) {
			for _, loc := range p.FindAll(line) {
				out = append(out, s.build(cat, line, loc[0], loc[1]))
			}
		}
	}
	return out
}

func (s *Scanner) build(cat catalog.Category, line string, start, end int) model.Match {
	text := line[start:end]
	fn := FunctionName(text)
	return model.Match{
		Category:        cat,
		Function:        fn,
		FunctionType:    s.cat.Label(fn),
		HookName:        HookName(text),
		OriginalLine:    line,
		HighlightedLine: Highlight(line, start, end),
		Span:            model.Span{ByteStart: start, ByteEnd: end},
	}
}

// FunctionName returns the text before the first '('.
func FunctionName(text string) string {
	if i := strings.IndexByte(text, '('); i >= 0 {
		return text[:i]
	}
	return text
}

// HookName returns the first quoted literal in text without its quotes, or
// catalog.NoHook.
func HookName(text string) string {
	lit := reLiteral.FindString(text)
	if lit == "" {
		return catalog.NoHook
	}
	return strings.Trim(lit, `'"`)
}

// Highlight wraps line[start:end] in backticks.
func Highlight(line string, start, end int) string {
	var b strings.Builder
	b.Grow(len(line) + 2)
	b.WriteString(line[:start])
	b.WriteByte('`')
	b.WriteString(line[start:end])
	b.WriteByte('`')
	b.WriteString(line[end:])
	return b.String()
}
