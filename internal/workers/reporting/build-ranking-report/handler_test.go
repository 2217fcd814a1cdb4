// internal/workers/reporting/build-ranking-report/handler_test.go
package buildrankingreport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/models"
	"creator-match-workers/internal/scoring"
	rankcreators "creator-match-workers/internal/workers/matching/rank-creators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistry = `{
  "version": "1.0.0",
  "lastUpdated": "2026-08-01",
  "activities": [
    {
      "id": "build-ranking-report",
      "displayName": "Build Ranking Report",
      "description": "Assembles the brand ranking report document",
      "category": "reporting",
      "version": "1.0.0",
      "taskType": "build-ranking-report",
      "implementationStatus": "completed",
      "outputSchema": {
        "type": "object",
        "properties": {
          "brandName": {"type": "string", "minLength": 1},
          "brandCategory": {"type": "string"},
          "generatedAt": {"type": "string"},
          "creatorCount": {"type": "integer", "minimum": 1},
          "topList": {"type": "array", "minItems": 1}
        },
        "required": ["brandName", "generatedAt", "creatorCount", "topList"]
      }
    }
  ]
}`

func newTestHandler(t *testing.T, topListSize int) *Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	require.NoError(t, os.WriteFile(path, []byte(testRegistry), 0o644))

	handler, err := NewHandler(&Config{
		Timeout:      5 * time.Second,
		RegistryPath: path,
		TopListSize:  topListSize,
	}, logger.NewNoOpLogger())
	require.NoError(t, err)
	return handler
}

func rankedCreator(username string, score int) scoring.RankedCreator {
	return scoring.RankedCreator{
		Username: username,
		CompatibilityResult: scoring.CompatibilityResult{
			OverallScore:   score,
			Rating:         scoring.Rating{Label: "Good Match", Color: "lightgreen"},
			Recommendation: scoring.Recommendation{Action: scoring.ActionRecommend},
		},
	}
}

func testRanking(usernames ...string) scoring.RankingResult {
	ranked := make([]scoring.RankedCreator, len(usernames))
	for i, username := range usernames {
		ranked[i] = rankedCreator(username, 90-i)
	}
	return scoring.RankingResult{
		BrandName:      "FitCo",
		BrandCategory:  "fitness",
		RankedCreators: ranked,
		Summary:        scoring.RatingSummary{Good: len(ranked)},
	}
}

func TestHandler_Execute(t *testing.T) {
	handler := newTestHandler(t, 10)

	output, err := handler.Execute(context.Background(), &Input{Ranking: testRanking("a", "b", "c")})

	require.NoError(t, err)
	report := output.RankingReport
	assert.Equal(t, "FitCo", report["brandName"])
	assert.Equal(t, float64(3), report["creatorCount"])
	assert.NotEmpty(t, report["generatedAt"])

	topList, ok := report["topList"].([]interface{})
	require.True(t, ok)
	require.Len(t, topList, 3)
	first, ok := topList[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a", first["username"])
	assert.Equal(t, float64(1), first["rank"])
}

func TestHandler_Execute_TopListTruncated(t *testing.T) {
	handler := newTestHandler(t, 2)

	output, err := handler.Execute(context.Background(), &Input{Ranking: testRanking("a", "b", "c", "d")})

	require.NoError(t, err)
	topList := output.RankingReport["topList"].([]interface{})
	assert.Len(t, topList, 2)
	assert.Equal(t, float64(4), output.RankingReport["creatorCount"])
}

func TestHandler_Execute_EmptyRanking(t *testing.T) {
	handler := newTestHandler(t, 10)

	_, err := handler.Execute(context.Background(), &Input{Ranking: scoring.RankingResult{}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_BUILD_FAILED")
}

func TestHandler_Execute_SchemaViolation(t *testing.T) {
	handler := newTestHandler(t, 10)

	// brandName is required by the registry schema.
	ranking := testRanking("a")
	ranking.BrandName = ""

	_, err := handler.Execute(context.Background(), &Input{Ranking: ranking})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_SCHEMA_INVALID")
}

// The ranking arrives as Zeebe job variables, so the report builder must be
// able to decode exactly what rank-creators serialized.
func TestHandler_Execute_ConsumesRankCreatorsOutput(t *testing.T) {
	handler := newTestHandler(t, 10)

	creators := []models.CreatorProfile{
		{Username: "fit_jane", Nickname: "Fit Jane", Bio: "gym and wellness coach", Followers: 80_000, EngagementRate: 5.5, Verified: true},
		{Username: "techtom", Nickname: "Tech Tom", Bio: "gadget reviews", Followers: 200_000, EngagementRate: 2.0},
	}
	brand := models.BrandProfile{Name: "FitCo", Category: "fitness", TargetTier: "micro"}
	upstream := rankcreators.Output{Ranking: scoring.RankCreatorsForBrand(creators, &brand)}

	variables, err := json.Marshal(upstream)
	require.NoError(t, err)

	var input Input
	require.NoError(t, json.Unmarshal(variables, &input))
	require.Len(t, input.Ranking.RankedCreators, 2)

	output, err := handler.Execute(context.Background(), &input)

	require.NoError(t, err)
	report := output.RankingReport
	assert.Equal(t, "FitCo", report["brandName"])
	assert.Equal(t, float64(2), report["creatorCount"])
	topList := report["topList"].([]interface{})
	first := topList[0].(map[string]interface{})
	assert.Equal(t, "fit_jane", first["username"])
}

func TestNewHandler_RegistryMissing(t *testing.T) {
	_, err := NewHandler(&Config{
		Timeout:      time.Second,
		RegistryPath: filepath.Join(t.TempDir(), "missing.json"),
		TopListSize:  10,
	}, logger.NewNoOpLogger())

	assert.Error(t, err)
}
