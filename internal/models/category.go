package models

import "strings"

// Category is the single-letter life-area code stored in every block.
type Category string

const (
	CategoryUnset     Category = ""
	CategoryRest      Category = "R"
	CategoryWork      Category = "W"
	CategoryGrowth    Category = "G"
	CategoryPersonal  Category = "P"
	CategoryMandatory Category = "M"
)

// Categories lists every tracked category in canonical order. Ties between
// categories are always resolved by this order.
var Categories = []Category{
	CategoryRest,
	CategoryWork,
	CategoryGrowth,
	CategoryPersonal,
	CategoryMandatory,
}

var categoryLabels = map[Category]string{
	CategoryRest:      "Rest",
	CategoryWork:      "Work",
	CategoryGrowth:    "Growth",
	CategoryPersonal:  "Personal",
	CategoryMandatory: "Mandatory",
}

// ParseCategory accepts exactly one upper-case category letter.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c.IsValid() {
		return c, true
	}
	return CategoryUnset, false
}

// ParseCategoryFold is ParseCategory without case sensitivity.
func ParseCategoryFold(s string) (Category, bool) {
	return ParseCategory(strings.ToUpper(s))
}

// ParseCategorySet reads a compact letter list such as "WG".
// Unknown letters are dropped.
func ParseCategorySet(s string) []Category {
	var set []Category
	seen := make(map[Category]bool)
	for _, r := range strings.ToUpper(s) {
		c := Category(string(r))
		if c.IsValid() && !seen[c] {
			seen[c] = true
			set = append(set, c)
		}
	}
	return set
}

// FormatCategorySet is the inverse of ParseCategorySet.
func FormatCategorySet(set []Category) string {
	var b strings.Builder
	for _, c := range set {
		b.WriteString(string(c))
	}
	return b.String()
}

// IsValid reports whether c is one of the five tracked categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the English name of the category, or "Unset".
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return "Unset"
}

// Rank returns the canonical position of c, or len(Categories) when unset.
func (c Category) Rank() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

// In reports whether c is a member of set.
func (c Category) In(set []Category) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

// CategoryHours maps each tracked category to an hour total.
type CategoryHours map[Category]float64

// NewCategoryHours returns a map holding a zero for every category.
func NewCategoryHours() CategoryHours {
	h := make(CategoryHours, len(Categories))
	for _, c := range Categories {
		h[c] = 0
	}
	return h
}

// Total sums the tracked categories.
func (h CategoryHours) Total() float64 {
	total := 0.0
	for _, c := range Categories {
		total += h[c]
	}
	return total
}

// Dominant returns the category with the most hours. Ties go to the earlier
// category in canonical order; an all-zero map yields CategoryUnset.
func (h CategoryHours) Dominant() Category {
	best := CategoryUnset
	bestHours := 0.0
	for _, c := range Categories {
		if h[c] > bestHours {
			best = c
			bestHours = h[c]
		}
	}
	return best
}
