package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/phyten/hookspot/internal/catalog"
	"github.com/phyten/hookspot/internal/model"
)

// WriteMarkdown renders a report grouped by category, then by function.
// Categories follow catalog order; functions follow first appearance.
func WriteMarkdown(w io.Writer, matches []model.Match, project string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n\n", project)
	fmt.Fprint(bw, "## WordPress Hooks Analysis\n\n")

	for _, cat := range catalog.Categories() {
		groups, order := groupByFunction(matches, cat)
		if len(order) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n### %s\n\n", cat.Plural())
		for _, fn := range order {
			items := groups[fn]
			fmt.Fprintf(bw, "#### %s\n\n", functionHeading(items[0]))
			for _, m := range items {
				fmt.Fprintf(bw, "- **File:** %s:%d\n", m.File, m.Line)
				if m.HasHook() {
					fmt.Fprintf(bw, "  - **Hook:** %s\n", m.HookName)
				}
				fmt.Fprintf(bw, "  - **Line:** %s\n\n", m.HighlightedLine)
			}
		}
	}
	return bw.Flush()
}

func groupByFunction(matches []model.Match, cat catalog.Category) (map[string][]model.Match, []string) {
	groups := make(map[string][]model.Match)
	var order []string
	for _, m := range matches {
		if m.Category != cat {
			continue
		}
		if _, ok := groups[m.Function]; !ok {
			order = append(order, m.Function)
		}
		groups[m.Function] = append(groups[m.Function], m)
	}
	return groups, order
}

func functionHeading(m model.Match) string {
	if m.FunctionType != "" {
		return m.FunctionType
	}
	return m.Function
}
