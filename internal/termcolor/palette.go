package termcolor

import "strings"

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// CategoryStyle colours a category heading by its canonical name.
func CategoryStyle(name string) Style {
	var color int
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "action":
		color = 4
	case "filter":
		color = 2
	case "shortcode":
		color = 5
	case "hook":
		color = 3
	default:
		return Style{Bold: true}
	}
	return Style{Bold: true, FGBasic: &color}
}
