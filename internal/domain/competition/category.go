package competition

import "strings"

// Category keys are inferred from the competition's display name by
// substring match. There is no category column server-side, so renaming
// a competition reclassifies every registration that points at it. All
// matching lives in this file so the lookup stays in one testable place.
type Category string

const (
	CategoryCTF  Category = "CTF"
	CategoryUIUX Category = "UI_UX"
	CategoryFTL  Category = "FTL"
)

var categoryKeys = []struct {
	needle   string
	category Category
}{
	{"ui/ux", CategoryUIUX},
	{"ctf", CategoryCTF},
	{"ftl", CategoryFTL},
}

// ResolveCategory matches name against the known keys, case-insensitive.
// It never guesses: a name that matches nothing returns ok=false and the
// caller decides what that means.
func ResolveCategory(name string) (Category, bool) {
	lowered := strings.ToLower(name)
	for _, k := range categoryKeys {
		if strings.Contains(lowered, k.needle) {
			return k.category, true
		}
	}
	return "", false
}

// CategoryOrDefault applies the configured fallback for unmatched names.
func CategoryOrDefault(name string, fallback Category) Category {
	if cat, ok := ResolveCategory(name); ok {
		return cat
	}
	return fallback
}

// ParseCategory converts a config value like "UI_UX" into a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryCTF:
		return CategoryCTF, true
	case CategoryUIUX:
		return CategoryUIUX, true
	case CategoryFTL:
		return CategoryFTL, true
	}
	return "", false
}
