// Package catalog holds the table of hook API functions the scanner looks
// for, grouped by category, together with their display labels.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// LiteralArg matches a quoted hook name. Word characters are Unicode
	// letters, marks, decimal digits and connector punctuation.
	LiteralArg = `['"][\p{L}\p{M}\p{Nd}\p{Pc}-]+['"]`
	// NoHook is the hook name recorded when a call carries no literal.
	NoHook = "N/A"
)

// Entry describes one detection rule before compilation.
type Entry struct {
	Category        Category
	Function        string
	LiteralRequired bool
}

// Pattern is a compiled Entry.
type Pattern struct {
	Entry
	re *regexp.Regexp
}

// FindAll returns the byte offsets of every non-overlapping occurrence in line.
func (p Pattern) FindAll(line string) [][]int {
	return p.re.FindAllStringIndex(line, -1)
}

func (p Pattern) String() string {
	return p.re.String()
}

// Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	groups [][]Pattern
	labels map[string]string
}

var defaultEntries = []Entry{
	{Action, "add_action", true},
	{Action, "do_action", true},
	{Action, "has_action", true},
	{Action, "remove_action", true},
	{Action, "remove_all_actions", true},
	{Action, "did_action", true},
	{Action, "do_action_ref_array", true},

	{Filter, "add_filter", true},
	{Filter, "apply_filters", true},
	{Filter, "has_filter", true},
	{Filter, "remove_filter", true},
	{Filter, "remove_all_filters", true},
	{Filter, "current_filter", false},
	{Filter, "apply_filters_ref_array", true},

	{Shortcode, "add_shortcode", true},
	{Shortcode, "do_shortcode", true},
	{Shortcode, "has_shortcode", true},
	{Shortcode, "remove_shortcode", true},
	{Shortcode, "remove_all_shortcodes", false},
	{Shortcode, "shortcode_atts", false},

	{Hook, "wp_hook", true},
}

var defaultLabels = map[string]string{
	"add_action":              "Action Registration",
	"do_action":               "Action Execution",
	"has_action":              "Action Check",
	"remove_action":           "Action Removal",
	"remove_all_actions":      "All Actions Removal",
	"did_action":              "Action Execution Check",
	"do_action_ref_array":     "Action Execution (Reference)",
	"add_filter":              "Filter Registration",
	"apply_filters":           "Filter Application",
	"has_filter":              "Filter Check",
	"remove_filter":           "Filter Removal",
	"remove_all_filters":      "All Filters Removal",
	"current_filter":          "Current Filter Check",
	"apply_filters_ref_array": "Filter Application (Reference)",
	"add_shortcode":           "Shortcode Registration",
	"do_shortcode":            "Shortcode Execution",
	"has_shortcode":           "Shortcode Check",
	"remove_shortcode":        "Shortcode Removal",
	"remove_all_shortcodes":   "All Shortcodes Removal",
	"shortcode_atts":          "Shortcode Attributes",
	"wp_hook":                 "Hook Creation",
}

// DefaultEntries returns a copy of the built-in WordPress entries.
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// DefaultLabels returns a copy of the built-in label table.
func DefaultLabels() map[string]string {
	out := make(map[string]string, len(defaultLabels))
	for k, v := range defaultLabels {
		out[k] = v
	}
	return out
}

// Default builds the WordPress catalog. The built-in table is covered by
// tests, so a failure here is a programming error.
func Default() *Catalog {
	c, err := New(defaultEntries, defaultLabels)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in table is invalid: %v", err))
	}
	return c
}

// New compiles entries into a catalog. Entries keep their relative order
// within a category.
func New(entries []Entry, labels map[string]string) (*Catalog, error) {
	c := &Catalog{
		groups: make([][]Pattern, len(categories)),
		labels: make(map[string]string, len(labels)),
	}
	for i, e := range entries {
		if !e.Category.Valid() {
			return nil, fmt.Errorf("entry %d: %w: %d", i, ErrUnknownCategory, int(e.Category))
		}
		name := strings.TrimSpace(e.Function)
		if name == "" {
			return nil, fmt.Errorf("entry %d: empty function name", i)
		}
		if strings.ContainsAny(name, "( \t") {
			return nil, fmt.Errorf("entry %d: invalid function name %q", i, e.Function)
		}
		expr := regexp.QuoteMeta(name) + `\(`
		if e.LiteralRequired {
			expr += LiteralArg
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, name, err)
		}
		e.Function = name
		c.groups[e.Category] = append(c.groups[e.Category], Pattern{Entry: e, re: re})
	}
	for k, v := range labels {
		c.labels[k] = v
	}
	return c, nil
}

// Patterns returns the patterns of one category in declaration order.
func (c *Catalog) Patterns(cat Category) []Pattern {
	if !cat.Valid() {
		return nil
	}
	return c.groups[cat]
}

// Label returns the display label of a function, falling back to the
// function name itself.
func (c *Catalog) Label(function string) string {
	if label, ok := c.labels[function]; ok && label != "" {
		return label
	}
	return function
}
