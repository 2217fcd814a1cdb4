// internal/workers/reporting/build-ranking-report/models.go
package buildrankingreport

import "creator-match-workers/internal/scoring"

type Input struct {
	Ranking scoring.RankingResult `json:"ranking"`
}

type Output struct {
	RankingReport map[string]interface{} `json:"rankingReport"`
}

// TopEntry is one row of the report's condensed top list.
type TopEntry struct {
	Rank         int    `json:"rank"`
	Username     string `json:"username"`
	OverallScore int    `json:"overallScore"`
	Rating       string `json:"rating"`
	Action       string `json:"action"`
}
