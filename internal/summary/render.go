package summary

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/phyten/hookspot/internal/termcolor"
	"github.com/phyten/hookspot/internal/textutil"
)

// Style selects the summary layout.
type Style string

const (
	StyleList  Style = "list"
	StyleTable Style = "table"
)

// ParseStyle validates a --summary value.
func ParseStyle(raw string) (Style, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "", "list":
		return StyleList, nil
	case "table":
		return StyleTable, nil
	default:
		return "", fmt.Errorf("invalid --summary: %s (want list|table)", raw)
	}
}

// RenderOptions carries the run details printed around the counts.
type RenderOptions struct {
	Project    string
	OutputPath string
	Skipped    int
	Style      Style
	Color      bool
}

// Render prints the overview of s to w.
func Render(w io.Writer, s Summary, ro RenderOptions) error {
	bw := bufio.NewWriter(w)
	header := termcolor.HeaderStyle()
	fmt.Fprintf(bw, "\n%s\n", termcolor.Apply(header, fmt.Sprintf("Analysis complete for %s!", ro.Project), ro.Color))
	if ro.OutputPath != "" {
		fmt.Fprintf(bw, "Results saved to: %s\n", ro.OutputPath)
	}
	if ro.Skipped > 0 {
		fmt.Fprintf(bw, "Skipped %d unreadable file(s)\n", ro.Skipped)
	}
	fmt.Fprintf(bw, "\nFound %d total occurrences:\n", s.Total)

	switch ro.Style {
	case StyleTable:
		renderTable(bw, s)
	default:
		renderList(bw, s, ro.Color)
	}
	return bw.Flush()
}

func renderList(w io.Writer, s Summary, color bool) {
	width := 0
	for _, cc := range s.Categories {
		for _, fc := range cc.Functions {
			if n := textutil.VisibleWidth(fc.Function); n > width {
				width = n
			}
		}
	}
	for _, cc := range s.Categories {
		title := termcolor.Apply(termcolor.CategoryStyle(cc.Category.String()), cc.Category.Plural(), color)
		fmt.Fprintf(w, "\n%s (%d total):\n", title, cc.Count)
		for _, fc := range cc.Functions {
			fmt.Fprintf(w, "  - %s: %d\n", textutil.PadRight(fc.Function, width), fc.Count)
		}
	}
}

func renderTable(w io.Writer, s Summary) {
	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Function", "Type", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, cc := range s.Categories {
		for _, fc := range cc.Functions {
			table.Append([]string{cc.Category.Plural(), fc.Function, fc.Label, strconv.Itoa(fc.Count)})
		}
	}
	table.SetFooter([]string{"", "", "Total", strconv.Itoa(s.Total)})
	table.Render()
}
