// internal/scoring/compatibility.go
package scoring

import (
	"math"

	"creator-match-workers/internal/models"
)

// Sub-score keys in the result's Scores map.
const (
	KeyNiche       = "nicheAlignment"
	KeyEngagement  = "engagementQuality"
	KeyAudience    = "audienceFit"
	KeySafety      = "brandSafety"
	KeySponsorship = "sponsorshipHistory"
)

// Recommendation actions.
const (
	ActionStrongRecommend = "strong_recommend"
	ActionRecommend       = "recommend"
	ActionConsider        = "consider"
	ActionNotRecommended  = "not_recommended"
	ActionAvoid           = "avoid"
	ActionError           = "error"
)

// ScoreBrandCompatibility evaluates one creator against one brand using the
// default data limits.
func ScoreBrandCompatibility(creator *models.CreatorProfile, brand *models.BrandProfile) CompatibilityResult {
	return ScoreBrandCompatibilityWithLimits(creator, brand, DefaultLimits)
}

// ScoreBrandCompatibilityWithLimits runs the five sub-scorers, combines them
// with fixed weights, and derives the rating and recommendation. It is a
// pure function of its inputs and never returns an error: unscoreable input
// yields an "Invalid Data" result instead.
func ScoreBrandCompatibilityWithLimits(creator *models.CreatorProfile, brand *models.BrandProfile, limits Limits) CompatibilityResult {
	if problems := ValidateCreator(creator, limits); len(problems) > 0 {
		return invalidResult(problems)
	}

	niche := ScoreNiche(creator, brand)
	engagement := ScoreEngagement(creator)
	audience := ScoreAudience(creator, brand)
	safety := ScoreSafety(creator)
	sponsorship := ScoreSponsorship(creator)

	weighted := float64(niche.Score)*WeightNiche +
		float64(engagement.Score)*WeightEngagement +
		float64(audience.Score)*WeightAudience +
		float64(safety.Score)*WeightSafety +
		float64(sponsorship.Score)*WeightSponsorship
	overall := roundHalfUp(weighted)

	strengths := []string{}
	flags := []string{}

	if niche.Score >= 80 {
		strengths = append(strengths, niche.Message)
	} else if niche.Score < 50 {
		flags = append(flags, niche.Message)
	}
	if engagement.Score >= 80 {
		strengths = append(strengths, engagement.Message)
	} else if engagement.Score < 50 {
		flags = append(flags, engagement.Message)
	}
	if safety.Score >= 90 {
		strengths = append(strengths, "clean brand safety profile")
	}
	flags = append(flags, safety.Flags...)
	if sponsorship.Score >= 80 {
		strengths = append(strengths, sponsorship.Message)
	}

	quality := dataQualityScore(creator)

	return CompatibilityResult{
		OverallScore:   overall,
		Rating:         ratingFor(overall),
		Recommendation: recommendationFor(overall, safety),
		Scores: map[string]SubScore{
			KeyNiche:       niche,
			KeyEngagement:  engagement,
			KeyAudience:    audience,
			KeySafety:      safety,
			KeySponsorship: sponsorship,
		},
		Strengths:        strengths,
		Flags:            flags,
		DataQualityScore: quality,
	}
}

func invalidResult(problems []string) CompatibilityResult {
	return CompatibilityResult{
		OverallScore: 0,
		Rating:       Rating{Label: "Invalid Data", Color: "gray"},
		Recommendation: Recommendation{
			Action:     ActionError,
			Message:    "creator data failed validation: " + problems[0],
			Confidence: "high",
		},
		Scores:    map[string]SubScore{},
		Strengths: []string{},
		Flags:     problems,
	}
}

// roundHalfUp rounds to the nearest integer with .5 rounding up.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func ratingFor(overall int) Rating {
	switch {
	case overall >= 85:
		return Rating{Label: "Excellent Match", Color: "green"}
	case overall >= 70:
		return Rating{Label: "Good Match", Color: "lightgreen"}
	case overall >= 55:
		return Rating{Label: "Moderate Match", Color: "yellow"}
	case overall >= 40:
		return Rating{Label: "Weak Match", Color: "orange"}
	default:
		return Rating{Label: "Poor Match", Color: "red"}
	}
}

// recommendationFor applies the safety veto before the score ladder: any
// high-risk content match forces "avoid" no matter how high the overall
// score landed. Confidence is fixed per action; data quality is reported
// separately as dataQualityScore.
func recommendationFor(overall int, safety SafetyScore) Recommendation {
	if hasHighRiskFlag(safety) {
		return Recommendation{
			Action:     ActionAvoid,
			Message:    "high-risk content detected, do not engage",
			Confidence: "high",
		}
	}

	switch {
	case overall >= 80:
		return Recommendation{
			Action:     ActionStrongRecommend,
			Message:    "excellent fit, initiate partnership outreach",
			Confidence: "high",
		}
	case overall >= 65:
		return Recommendation{
			Action:     ActionRecommend,
			Message:    "good fit, worth pursuing",
			Confidence: "medium",
		}
	case overall >= 50:
		return Recommendation{
			Action:     ActionConsider,
			Message:    "possible fit, review manually before outreach",
			Confidence: "low",
		}
	default:
		return Recommendation{
			Action:     ActionNotRecommended,
			Message:    "poor fit for this brand",
			Confidence: "medium",
		}
	}
}

// dataQualityScore is the percentage of core profile fields populated.
// Zero and false values count as missing, mirroring how sparse scraper
// payloads arrive.
func dataQualityScore(creator *models.CreatorProfile) int {
	present := 0
	if creator.Username != "" {
		present++
	}
	if creator.Followers > 0 {
		present++
	}
	if creator.EngagementRate > 0 {
		present++
	}
	if creator.Bio != "" {
		present++
	}
	if creator.Verified {
		present++
	}
	if creator.Nickname != "" {
		present++
	}
	return roundHalfUp(float64(present) / 6.0 * 100.0)
}
