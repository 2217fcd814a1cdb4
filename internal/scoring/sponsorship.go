// internal/scoring/sponsorship.go
package scoring

import "creator-match-workers/internal/models"

// ScoreSponsorship estimates sponsorship readiness from proxy signals on the
// profile: commerce/seller flags, verification, and bio links. Branches are
// checked from the strongest signal downward and the first match wins.
func ScoreSponsorship(creator *models.CreatorProfile) SponsorshipScore {
	hasLink := creator.BioLink != "" || len(creator.BioLinks) > 0

	switch {
	case creator.CommerceUser || creator.SellerFlag:
		return SponsorshipScore{
			Score:   95,
			Message: "commerce-enabled account, already monetizing",
			Signal:  "commerce",
		}
	case creator.Verified && len(creator.BioLinks) >= 2:
		return SponsorshipScore{
			Score:   90,
			Message: "verified with multiple bio links",
			Signal:  "verified+links",
		}
	case creator.Verified && hasLink:
		return SponsorshipScore{
			Score:   80,
			Message: "verified with a bio link",
			Signal:  "verified+link",
		}
	case hasLink:
		return SponsorshipScore{
			Score:   65,
			Message: "bio link present, not verified",
			Signal:  "link",
		}
	case creator.Verified:
		return SponsorshipScore{
			Score:   60,
			Message: "verified, no bio links",
			Signal:  "verified",
		}
	default:
		return SponsorshipScore{
			Score:   40,
			Message: "no sponsorship readiness signals",
			Signal:  "none",
		}
	}
}
