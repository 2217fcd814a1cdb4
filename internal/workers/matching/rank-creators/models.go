// internal/workers/matching/rank-creators/models.go
package rankcreators

import (
	"creator-match-workers/internal/models"
	"creator-match-workers/internal/scoring"
)

type Input struct {
	Creators []models.CreatorProfile `json:"creators"`
	Brand    models.BrandProfile     `json:"brand"`
}

type Output struct {
	Ranking scoring.RankingResult `json:"ranking"`
}
