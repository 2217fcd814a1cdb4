// internal/scoring/audience.go
package scoring

import (
	"fmt"
	"strings"

	"creator-match-workers/internal/models"
)

// ScoreAudience rates how closely the creator's follower tier matches the
// audience size the brand is targeting. Brands without a target tier, or
// with an unrecognized one, get a neutral-positive score since any audience
// size is acceptable to them.
func ScoreAudience(creator *models.CreatorProfile, brand *models.BrandProfile) AudienceScore {
	creatorTier := ClassifyTier(creator.Followers)
	target := strings.ToLower(strings.TrimSpace(brand.TargetTier))

	if target == "" || target == "any" || tierIndex(Tier(target)) < 0 {
		return AudienceScore{
			Score:       70,
			Message:     "no audience size constraint from brand",
			CreatorTier: creatorTier,
			TargetTier:  brand.TargetTier,
		}
	}

	switch tierDistance(creatorTier, Tier(target)) {
	case 0:
		return AudienceScore{
			Score:       95,
			Message:     fmt.Sprintf("perfect audience match: %s", creatorTier),
			CreatorTier: creatorTier,
			TargetTier:  target,
		}
	case 1:
		return AudienceScore{
			Score:       70,
			Message:     fmt.Sprintf("adjacent audience tier: %s vs target %s", creatorTier, target),
			CreatorTier: creatorTier,
			TargetTier:  target,
		}
	default:
		return AudienceScore{
			Score:       40,
			Message:     fmt.Sprintf("audience size mismatch: %s vs target %s", creatorTier, target),
			CreatorTier: creatorTier,
			TargetTier:  target,
		}
	}
}
