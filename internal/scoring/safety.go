// internal/scoring/safety.go
package scoring

import (
	"fmt"

	"creator-match-workers/internal/models"
)

const (
	highRiskDeduction   = 30
	mediumRiskDeduction = 15
)

// ScoreSafety scans profile text for risk keywords. The score starts at 100
// and each match deducts points, floored at zero. Sponsorship signal words
// are recorded but never deducted; they indicate prior branded work.
func ScoreSafety(creator *models.CreatorProfile) SafetyScore {
	text := profileText(creator)

	score := 100
	var flags []string
	var signals []string

	for _, keyword := range highRiskKeywords {
		if containsKeyword(text, keyword) {
			score -= highRiskDeduction
			flags = append(flags, fmt.Sprintf("high-risk content: %q", keyword))
		}
	}
	for _, keyword := range mediumRiskKeywords {
		if containsKeyword(text, keyword) {
			score -= mediumRiskDeduction
			flags = append(flags, fmt.Sprintf("medium-risk content: %q", keyword))
		}
	}
	for _, keyword := range sponsorshipSignalKeywords {
		if containsKeyword(text, keyword) {
			signals = append(signals, keyword)
		}
	}

	if score < 0 {
		score = 0
	}

	deducted := 100 - score
	var level string
	switch {
	case deducted > 30:
		level = "high"
	case deducted > 0:
		level = "medium"
	default:
		level = "low"
	}

	message := "no content flags found"
	if len(flags) > 0 {
		message = fmt.Sprintf("%d content flag(s) found", len(flags))
	}

	return SafetyScore{
		Score:            score,
		Message:          message,
		Flags:            flags,
		RiskLevel:        level,
		PriorSponsorship: signals,
	}
}

// hasHighRiskFlag reports whether any safety flag came from the high-risk
// list. A single high-risk match vetoes the recommendation regardless of
// the overall score.
func hasHighRiskFlag(s SafetyScore) bool {
	for _, flag := range s.Flags {
		if len(flag) >= len("high-risk") && flag[:len("high-risk")] == "high-risk" {
			return true
		}
	}
	return false
}
