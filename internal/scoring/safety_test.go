// internal/scoring/safety_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"creator-match-workers/internal/models"
)

func TestScoreSafety(t *testing.T) {
	tests := []struct {
		name          string
		bio           string
		expectedScore int
		expectedLevel string
		expectedFlags int
	}{
		{
			name:          "clean profile",
			bio:           "fitness coach sharing workout tips",
			expectedScore: 100,
			expectedLevel: "low",
			expectedFlags: 0,
		},
		{
			name:          "single high-risk keyword",
			bio:           "survived the scandal of 2024",
			expectedScore: 70,
			expectedLevel: "medium",
			expectedFlags: 1,
		},
		{
			name:          "high and medium risk stack",
			bio:           "scandal and controversy follow me",
			expectedScore: 55,
			expectedLevel: "high",
			expectedFlags: 2,
		},
		{
			name:          "single medium-risk keyword",
			bio:           "late night gambling streams",
			expectedScore: 85,
			expectedLevel: "medium",
			expectedFlags: 1,
		},
		{
			name:          "score floors at zero",
			bio:           "fraud lawsuit scandal arrest assault drugs scam",
			expectedScore: 0,
			expectedLevel: "high",
			expectedFlags: 7,
		},
		{
			name:          "high-risk word embedded in a longer word is ignored",
			bio:           "my favorite sandal collection",
			expectedScore: 100,
			expectedLevel: "low",
			expectedFlags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := models.CreatorProfile{Bio: tt.bio}

			result := ScoreSafety(&creator)

			assert.Equal(t, tt.expectedScore, result.Score)
			assert.Equal(t, tt.expectedLevel, result.RiskLevel)
			assert.Len(t, result.Flags, tt.expectedFlags)
		})
	}
}

func TestScoreSafety_SponsorshipSignalsDoNotDeduct(t *testing.T) {
	creator := models.CreatorProfile{Bio: "sponsored posts and brand deal inquiries welcome"}

	result := ScoreSafety(&creator)

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Flags)
	assert.Contains(t, result.PriorSponsorship, "sponsored")
	assert.Contains(t, result.PriorSponsorship, "brand deal")
}

func TestHasHighRiskFlag(t *testing.T) {
	highRisk := ScoreSafety(&models.CreatorProfile{Bio: "scandal survivor"})
	mediumRisk := ScoreSafety(&models.CreatorProfile{Bio: "controversial takes"})
	clean := ScoreSafety(&models.CreatorProfile{Bio: "wholesome content"})

	assert.True(t, hasHighRiskFlag(highRisk))
	assert.False(t, hasHighRiskFlag(mediumRisk))
	assert.False(t, hasHighRiskFlag(clean))
}
