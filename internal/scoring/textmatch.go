// internal/scoring/textmatch.go
package scoring

import (
	"strings"

	"creator-match-workers/internal/models"
)

// containsKeyword reports whether keyword occurs in haystack as a whole
// token, i.e. not embedded inside a longer alphanumeric run. "ad" matches
// "paid ad below" but not "adventure"; "sandal" never matches "scandal".
// Both arguments are expected to be lowercase already.
func containsKeyword(haystack, keyword string) bool {
	if keyword == "" || haystack == "" {
		return false
	}
	for start := 0; start <= len(haystack)-len(keyword); {
		idx := strings.Index(haystack[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keyword)
		leftOK := idx == 0 || !isWordByte(haystack[idx-1])
		rightOK := end == len(haystack) || !isWordByte(haystack[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// profileText is the normalized searchable text of a creator profile:
// bio plus display name, lowercased.
func profileText(creator *models.CreatorProfile) string {
	return strings.ToLower(strings.TrimSpace(creator.Bio + " " + creator.Nickname))
}
