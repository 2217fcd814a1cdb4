// internal/scoring/niche.go
package scoring

import (
	"fmt"
	"strings"

	"creator-match-workers/internal/models"
)

// extractNiches derives creator niches from profile text by keyword lookup.
// The returned slice preserves lexicon order and contains no duplicates.
func extractNiches(text string) []string {
	var niches []string
	for _, entry := range nicheKeywords {
		for _, keyword := range entry.Keywords {
			if containsKeyword(text, keyword) {
				niches = append(niches, entry.Niche)
				break
			}
		}
	}
	return niches
}

// nichesOverlap treats two niche names as compatible when either contains
// the other, so "tech" pairs with "technology" without an exact-name table.
func nichesOverlap(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ScoreNiche rates how well the creator's detected niches line up with the
// niches compatible with the brand's category.
func ScoreNiche(creator *models.CreatorProfile, brand *models.BrandProfile) NicheScore {
	text := profileText(creator)
	keywordNiches := extractNiches(text)

	detected := keywordNiches
	if creator.Verified {
		detected = appendUnique(detected, verifiedNiche)
	}

	compatible := brandCategoryNiches[strings.ToLower(strings.TrimSpace(brand.Category))]

	var matched []string
	for _, niche := range detected {
		for _, want := range compatible {
			if nichesOverlap(niche, want) {
				matched = append(matched, niche)
				break
			}
		}
	}

	switch {
	case len(matched) >= 2:
		return NicheScore{
			Score:    95,
			Message:  "strong niche alignment: " + strings.Join(matched, ", "),
			Matched:  matched,
			Detected: detected,
		}
	case len(matched) == 1:
		return NicheScore{
			Score:    75,
			Message:  "good niche alignment: " + matched[0],
			Matched:  matched,
			Detected: detected,
		}
	case len(keywordNiches) == 0:
		return NicheScore{
			Score:    50,
			Message:  "unable to determine niche from profile",
			Detected: detected,
		}
	default:
		preview := detected
		if len(preview) > 3 {
			preview = preview[:3]
		}
		return NicheScore{
			Score:    30,
			Message:  fmt.Sprintf("low niche alignment; detected: %s", strings.Join(preview, ", ")),
			Detected: detected,
		}
	}
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
