// internal/scoring/tier.go
package scoring

// Tier classifies a creator by follower count.
type Tier string

const (
	TierNano  Tier = "nano"
	TierMicro Tier = "micro"
	TierMid   Tier = "mid-tier"
	TierMacro Tier = "macro"
	TierMega  Tier = "mega"
)

// tierOrder lists tiers from smallest to largest audience. Index distance
// between two tiers drives the audience fit score.
var tierOrder = []Tier{TierNano, TierMicro, TierMid, TierMacro, TierMega}

// ClassifyTier maps a follower count onto the tier ladder. Boundary values
// belong to the larger tier: exactly 10k is micro, exactly 1M is mega.
func ClassifyTier(followers int64) Tier {
	switch {
	case followers >= 1_000_000:
		return TierMega
	case followers >= 500_000:
		return TierMacro
	case followers >= 100_000:
		return TierMid
	case followers >= 10_000:
		return TierMicro
	default:
		return TierNano
	}
}

// tierIndex returns the position of t on the ladder, or -1 for an
// unrecognized label.
func tierIndex(t Tier) int {
	for i, candidate := range tierOrder {
		if candidate == t {
			return i
		}
	}
	return -1
}

// tierDistance is the absolute ladder distance between two tiers.
func tierDistance(a, b Tier) int {
	ia, ib := tierIndex(a), tierIndex(b)
	if ia < 0 || ib < 0 {
		return -1
	}
	if ia > ib {
		return ia - ib
	}
	return ib - ia
}
