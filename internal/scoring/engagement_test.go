// internal/scoring/engagement_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"creator-match-workers/internal/models"
)

func TestScoreEngagement(t *testing.T) {
	tests := []struct {
		name          string
		followers     int64
		rate          float64
		expectedScore int
		expectedTier  Tier
	}{
		{name: "micro excellent", followers: 50_000, rate: 7.5, expectedScore: 95, expectedTier: TierMicro},
		{name: "micro good", followers: 50_000, rate: 6.0, expectedScore: 75, expectedTier: TierMicro},
		{name: "micro acceptable", followers: 50_000, rate: 3.2, expectedScore: 55, expectedTier: TierMicro},
		{name: "micro low", followers: 50_000, rate: 1.0, expectedScore: 30, expectedTier: TierMicro},
		{name: "threshold boundary counts as the better band", followers: 50_000, rate: 5.0, expectedScore: 75, expectedTier: TierMicro},
		{name: "mega rates graded on a gentler curve", followers: 2_000_000, rate: 3.0, expectedScore: 95, expectedTier: TierMega},
		{name: "nano held to the strictest curve", followers: 5_000, rate: 5.0, expectedScore: 55, expectedTier: TierNano},
		{name: "missing rate treated as zero and lands in the lowest band", followers: 50_000, rate: 0, expectedScore: 30, expectedTier: TierMicro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := models.CreatorProfile{Followers: tt.followers, EngagementRate: tt.rate}

			result := ScoreEngagement(&creator)

			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.expectedTier, result.Tier)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestScoreEngagement_MissingRateMessageKeepsRateAndTier(t *testing.T) {
	result := ScoreEngagement(&models.CreatorProfile{Followers: 50_000, EngagementRate: 0})

	assert.Equal(t, 30, result.Score)
	assert.Contains(t, result.Message, "0.0%")
	assert.Contains(t, result.Message, "micro")
}
