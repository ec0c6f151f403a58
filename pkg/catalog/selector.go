package catalog

import "strings"

// preferred is the default-model preference order, most preferred first.
var preferred = []string{
	"openai/gpt-4.1-mini",
	"openai/gpt-4o-mini",
	"openai/gpt-4.1",
	"openai/gpt-4o",
	"openai/gpt-4",
}

// DefaultIndex picks the default entry of a catalog: the first preferred id
// present (exact match), else the first id containing "gpt-4" in any case,
// else index 0. The caller must not pass an empty catalog; an empty catalog
// is a degenerate UI state handled before selection.
func DefaultIndex(models []string) int {
	for _, pref := range preferred {
		for i, id := range models {
			if id == pref {
				return i
			}
		}
	}
	for i, id := range models {
		if strings.Contains(strings.ToLower(id), "gpt-4") {
			return i
		}
	}
	return 0
}
