// internal/scoring/ranker.go
package scoring

import (
	"sort"
	"sync"

	"creator-match-workers/internal/models"
)

// rankerConcurrency caps the evaluation fan-out. Scoring is CPU-only, so a
// small pool keeps large batches from spawning thousands of goroutines.
const rankerConcurrency = 8

// RankCreatorsForBrand evaluates every creator against the brand and returns
// them ordered by overall score, highest first. Ties keep the input order so
// reruns over the same batch produce identical reports.
func RankCreatorsForBrand(creators []models.CreatorProfile, brand *models.BrandProfile) RankingResult {
	return RankCreatorsForBrandWithLimits(creators, brand, DefaultLimits)
}

// RankCreatorsForBrandWithLimits is RankCreatorsForBrand with explicit data
// limits.
func RankCreatorsForBrandWithLimits(creators []models.CreatorProfile, brand *models.BrandProfile, limits Limits) RankingResult {
	ranked := make([]RankedCreator, len(creators))

	var wg sync.WaitGroup
	sem := make(chan struct{}, rankerConcurrency)
	for i := range creators {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			ranked[i] = RankedCreator{
				Username:            creators[i].Username,
				CompatibilityResult: ScoreBrandCompatibilityWithLimits(&creators[i], brand, limits),
			}
		}(i)
	}
	wg.Wait()

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].OverallScore > ranked[b].OverallScore
	})

	result := RankingResult{
		BrandName:      brand.Name,
		BrandCategory:  brand.Category,
		RankedCreators: ranked,
		Summary:        summarize(ranked),
	}
	if len(ranked) > 0 {
		top := ranked[0]
		result.TopPick = &top
	}
	return result
}

func summarize(ranked []RankedCreator) RatingSummary {
	var summary RatingSummary
	for _, entry := range ranked {
		switch {
		case entry.OverallScore >= 85:
			summary.Excellent++
		case entry.OverallScore >= 70:
			summary.Good++
		case entry.OverallScore >= 55:
			summary.Moderate++
		default:
			summary.Weak++
		}
	}
	return summary
}
