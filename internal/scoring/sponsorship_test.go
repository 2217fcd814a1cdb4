// internal/scoring/sponsorship_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"creator-match-workers/internal/models"
)

func TestScoreSponsorship(t *testing.T) {
	tests := []struct {
		name          string
		creator       models.CreatorProfile
		expectedScore int
	}{
		{
			name:          "commerce user",
			creator:       models.CreatorProfile{CommerceUser: true},
			expectedScore: 95,
		},
		{
			name:          "seller flag counts as commerce",
			creator:       models.CreatorProfile{SellerFlag: true},
			expectedScore: 95,
		},
		{
			name:          "commerce wins over verification",
			creator:       models.CreatorProfile{CommerceUser: true, Verified: true, BioLinks: []string{"a", "b"}},
			expectedScore: 95,
		},
		{
			name:          "verified with multiple links",
			creator:       models.CreatorProfile{Verified: true, BioLinks: []string{"https://a.example", "https://b.example"}},
			expectedScore: 90,
		},
		{
			name:          "verified with single link",
			creator:       models.CreatorProfile{Verified: true, BioLink: "https://a.example"},
			expectedScore: 80,
		},
		{
			name:          "unverified with link",
			creator:       models.CreatorProfile{BioLink: "https://a.example"},
			expectedScore: 65,
		},
		{
			name:          "verified without links",
			creator:       models.CreatorProfile{Verified: true},
			expectedScore: 60,
		},
		{
			name:          "no signals",
			creator:       models.CreatorProfile{},
			expectedScore: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreSponsorship(&tt.creator)

			assert.Equal(t, tt.expectedScore, result.Score)
			assert.NotEmpty(t, result.Signal)
		})
	}
}
