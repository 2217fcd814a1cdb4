// internal/workers/reporting/push-ranking-report/models.go
package pushrankingreport

type Input struct {
	RankingReport map[string]interface{} `json:"rankingReport"`
}

type Output struct {
	ReportID  string `json:"reportId"`
	Index     string `json:"index"`
	IndexedAt string `json:"indexedAt"`
}
