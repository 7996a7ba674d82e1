package domain

import (
	"strings"
)

// NormalizeText canonicalizes free-form text for search storage and
// comparison: trimmed, lowercased, with runs of spaces collapsed to one.
// Diacritics, hyphens, and apostrophes survive, so "Café Aurora" stays
// findable as "café aurora".
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	inRun := false
	for _, r := range text {
		if r == ' ' {
			if inRun {
				continue
			}
			inRun = true
		} else {
			inRun = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeSite canonicalizes a site slug for storage and lookup: trimmed
// and lowercased. Slug shape itself is enforced at validation time.
func NormalizeSite(site string) string {
	return strings.ToLower(strings.TrimSpace(site))
}
