// internal/scoring/validate.go
package scoring

import (
	"fmt"

	"creator-match-workers/internal/models"
)

// Limits bounds the plausible range of creator data. Values outside the
// limits are treated as corrupt input rather than extreme outliers.
type Limits struct {
	MaxFollowers int64
	MaxBioLength int
}

// DefaultLimits matches the platform caps the scraper enforces upstream.
var DefaultLimits = Limits{
	MaxFollowers: 1_000_000_000,
	MaxBioLength: 500,
}

// ValidateCreator returns a list of problems with the record, empty when it
// is scoreable. Zero-value fields are tolerated here; they degrade the data
// quality score instead of blocking evaluation.
func ValidateCreator(creator *models.CreatorProfile, limits Limits) []string {
	if creator == nil {
		return []string{"creator record is missing"}
	}

	var problems []string
	if creator.Followers < 0 {
		problems = append(problems, "followers count is negative")
	}
	if limits.MaxFollowers > 0 && creator.Followers > limits.MaxFollowers {
		problems = append(problems, fmt.Sprintf("followers count exceeds maximum of %d", limits.MaxFollowers))
	}
	if creator.EngagementRate < 0 || creator.EngagementRate > 100 {
		problems = append(problems, "engagement rate outside valid range [0, 100]")
	}
	if limits.MaxBioLength > 0 && len(creator.Bio) > limits.MaxBioLength {
		problems = append(problems, fmt.Sprintf("bio exceeds maximum length of %d", limits.MaxBioLength))
	}
	return problems
}
