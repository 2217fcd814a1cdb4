// internal/scoring/engagement.go
package scoring

import (
	"fmt"

	"creator-match-workers/internal/models"
)

// ScoreEngagement rates the creator's engagement rate against the
// expectations for their follower tier. A missing rate is scored as rate 0
// and lands in the lowest band.
func ScoreEngagement(creator *models.CreatorProfile) EngagementScore {
	tier := ClassifyTier(creator.Followers)
	rate := creator.EngagementRate

	thresholds := tierEngagement[tier]
	var score int
	var quality string
	switch {
	case rate >= thresholds.Excellent:
		score, quality = 95, "excellent"
	case rate >= thresholds.Good:
		score, quality = 75, "good"
	case rate >= thresholds.Acceptable:
		score, quality = 55, "acceptable"
	default:
		score, quality = 30, "low"
	}

	return EngagementScore{
		Score:   score,
		Message: fmt.Sprintf("%s engagement: %.1f%% for a %s account", quality, rate, tier),
		Rate:    rate,
		Tier:    tier,
	}
}
