// internal/workers/matching/score-brand-compatibility/models.go
package scorebrandcompatibility

import (
	"creator-match-workers/internal/models"
	"creator-match-workers/internal/scoring"
)

type Input struct {
	Creator *models.CreatorProfile `json:"creator"`
	Brand   models.BrandProfile    `json:"brand"`
}

type Output struct {
	Username            string                      `json:"username"`
	CompatibilityResult scoring.CompatibilityResult `json:"compatibilityResult"`
}
