package suggest

import (
	"strings"

	"budgetwise/internal/core"
)

// MatchCategory maps a free-text label onto the fixed category table.
// The comparison is case-insensitive and bidirectional: a category matches
// when the label contains the first word of its name, or its name contains
// the first word of the label. The first match in enumeration order wins.
func MatchCategory(label string) (core.Category, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return core.Category{}, false
	}
	labelHead := firstWord(label)

	for _, cat := range core.Categories {
		name := strings.ToLower(cat.Name)
		if strings.Contains(label, firstWord(name)) || strings.Contains(name, labelHead) {
			return cat, true
		}
	}
	return core.Category{}, false
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
