package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name is not one of the
// canonical lowercase names.
var ErrUnknownCategory = errors.New("unknown category")

// Category classifies a detected call. The set is closed.
type Category int

const (
	Action Category = iota
	Filter
	Shortcode
	Hook
)

var categories = []Category{Action, Filter, Shortcode, Hook}

// Categories returns every category in report order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string {
	switch c {
	case Action:
		return "action"
	case Filter:
		return "filter"
	case Shortcode:
		return "shortcode"
	case Hook:
		return "hook"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Plural returns the capitalized plural used for report headings.
func (c Category) Plural() string {
	switch c {
	case Action:
		return "Actions"
	case Filter:
		return "Filters"
	case Shortcode:
		return "Shortcodes"
	case Hook:
		return "Hooks"
	default:
		return c.String()
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Action && c <= Hook
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory matches raw case-insensitively against the canonical names.
func ParseCategory(raw string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range categories {
		if c.String() == name {
			return c, nil
		}
	}
	return Action, fmt.Errorf("%w: %q (want action|filter|shortcode|hook)", ErrUnknownCategory, raw)
}
