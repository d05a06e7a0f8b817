package registry

import (
	"fmt"
	"strings"
)

// ByCategory returns the tool definitions belonging to cat, in catalog order.
func ByCategory(cat Category) []ToolDefinition {
	var out []ToolDefinition
	for _, d := range Tools {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Get looks up a definition by tool id.
func Get(id string) (ToolDefinition, bool) {
	for _, d := range Tools {
		if d.ID == id {
			return d, true
		}
	}
	return ToolDefinition{}, false
}

// ParseCategory converts a user-supplied string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (known: %s)", s, categoryList())
	}
	return c, nil
}

func categoryList() string {
	cats := Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Validate checks defs for misconfiguration: duplicate ids, empty ids or
// commands, and unknown categories. Scanners assume a validated catalog.
func Validate(defs []ToolDefinition) error {
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return fmt.Errorf("tool %q: empty id", d.DisplayName)
		}
		if seen[id] {
			return fmt.Errorf("tool %q: duplicate id", id)
		}
		seen[id] = true
		if strings.TrimSpace(d.Command) == "" {
			return fmt.Errorf("tool %q: empty command", id)
		}
		for _, alt := range d.AlternateCommands {
			if strings.TrimSpace(alt) == "" {
				return fmt.Errorf("tool %q: empty alternate command", id)
			}
		}
		if !d.Category.Valid() {
			return fmt.Errorf("tool %q: unknown category %q", id, d.Category)
		}
	}
	return nil
}
