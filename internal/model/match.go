package model

import "github.com/phyten/hookspot/internal/catalog"

// Span is the byte range of a match inside Match.OriginalLine.
type Span struct {
	ByteStart int `json:"byte_start"`
	ByteEnd   int `json:"byte_end"`
}

// Match is one pattern hit on one line of one file. Values are never
// mutated after the scanner produces them.
type Match struct {
	Category        catalog.Category `json:"category"`
	Function        string           `json:"function"`
	FunctionType    string           `json:"function_type"`
	HookName        string           `json:"hook_name"`
	File            string           `json:"file_path"`
	Line            int              `json:"line_number"`
	OriginalLine    string           `json:"original_line"`
	HighlightedLine string           `json:"highlighted_line"`
	Span            Span             `json:"span"`
}

// HasHook reports whether a string literal was extracted for the call.
func (m Match) HasHook() bool {
	return m.HookName != "" && m.HookName != catalog.NoHook
}
