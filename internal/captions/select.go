package captions

import (
	"math/rand/v2"
	"strings"
)

const (
	// MaxTextLength caps each custom caption, in characters.
	MaxTextLength = 100

	maxSelected   = 10
	maxCategories = 4
	freeSlots     = 6
	minSelected   = 8
)

// Select draws a varied caption list from the catalog.
//
// The catalog is shuffled with rng (the global source when rng is nil) and
// walked in order. An entry from a category not yet picked is always taken
// while fewer than four categories are covered; any other entry is taken only
// while fewer than six have been picked. The walk stops at ten picks, then
// unused entries top the list up to eight.
func Select(rng *rand.Rand) []Template {
	order := make([]int, len(catalog))
	for i := range order {
		order[i] = i
	}
	swap := func(i, j int) { order[i], order[j] = order[j], order[i] }
	if rng != nil {
		rng.Shuffle(len(order), swap)
	} else {
		rand.Shuffle(len(order), swap)
	}

	picked := make(map[int]bool, maxSelected)
	seen := make(map[Category]bool, maxCategories)
	var result []Template
	take := func(i int) {
		picked[i] = true
		result = append(result, catalog[i])
	}

	for _, i := range order {
		if len(result) >= maxSelected {
			break
		}
		cat := catalog[i].Category
		switch {
		case len(seen) < maxCategories && !seen[cat]:
			seen[cat] = true
			take(i)
		case len(result) < freeSlots:
			take(i)
		}
	}

	for _, i := range order {
		if len(result) >= minSelected {
			break
		}
		if !picked[i] {
			take(i)
		}
	}
	return result
}

// NewCustom builds a caller-supplied template. It bypasses selection and
// keeps the texts exactly as given.
func NewCustom(top, bottom string) Template {
	return Template{TopText: top, BottomText: bottom, Category: Custom}
}

// IsBlank reports whether neither caption has visible text.
func (t Template) IsBlank() bool {
	return strings.TrimSpace(t.TopText) == "" && strings.TrimSpace(t.BottomText) == ""
}

// Clamp cuts s to at most MaxTextLength characters.
func Clamp(s string) string {
	r := []rune(s)
	if len(r) <= MaxTextLength {
		return s
	}
	return string(r[:MaxTextLength])
}
