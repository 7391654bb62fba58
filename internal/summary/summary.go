// Package summary counts matches per category and function and prints the
// end-of-run overview.
package summary

import (
	"github.com/phyten/hookspot/internal/catalog"
	"github.com/phyten/hookspot/internal/model"
)

// FunctionCount is the number of calls to one function.
type FunctionCount struct {
	Function string
	Label    string
	Count    int
}

// CategoryCount groups the function counts of one category.
type CategoryCount struct {
	Category  catalog.Category
	Count     int
	Functions []FunctionCount
}

// Summary is the aggregate over one match list.
type Summary struct {
	Total      int
	Categories []CategoryCount
}

// Aggregate counts matches. Categories appear in catalog order and only when
// non-empty; functions appear in order of first occurrence. A function is
// attributed to the category recorded on each match.
func Aggregate(matches []model.Match) Summary {
	s := Summary{Total: len(matches)}
	for _, cat := range catalog.Categories() {
		cc := CategoryCount{Category: cat}
		index := make(map[string]int)
		for _, m := range matches {
			if m.Category != cat {
				continue
			}
			cc.Count++
			i, ok := index[m.Function]
			if !ok {
				i = len(cc.Functions)
				index[m.Function] = i
				cc.Functions = append(cc.Functions, FunctionCount{Function: m.Function, Label: m.FunctionType})
			}
			cc.Functions[i].Count++
		}
		if cc.Count > 0 {
			s.Categories = append(s.Categories, cc)
		}
	}
	return s
}

// Count returns the number of matches in one category.
func (s Summary) Count(cat catalog.Category) int {
	for _, cc := range s.Categories {
		if cc.Category == cat {
			return cc.Count
		}
	}
	return 0
}
