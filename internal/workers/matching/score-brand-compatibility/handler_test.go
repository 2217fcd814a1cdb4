// internal/workers/matching/score-brand-compatibility/handler_test.go
package scorebrandcompatibility

import (
	"context"
	"testing"
	"time"

	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/models"
	"creator-match-workers/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(&Config{
		Timeout: 5 * time.Second,
		Limits:  scoring.DefaultLimits,
	}, logger.NewNoOpLogger())
}

func TestHandler_Execute(t *testing.T) {
	creator := models.CreatorProfile{
		Username:       "techreviews",
		Nickname:       "Tech Reviews",
		Bio:            "tech reviewer and gadget lover",
		Followers:      50_000,
		EngagementRate: 6.0,
		Verified:       true,
		BioLink:        "https://links.example/techreviews",
	}
	brand := models.BrandProfile{Name: "GadgetCo", Category: "technology", TargetTier: "micro"}

	handler := newTestHandler()
	output, err := handler.Execute(context.Background(), &Input{Creator: &creator, Brand: brand})

	require.NoError(t, err)
	assert.Equal(t, "techreviews", output.Username)
	assert.Equal(t, 84, output.CompatibilityResult.OverallScore)
	assert.Equal(t, "Good Match", output.CompatibilityResult.Rating.Label)
}

func TestHandler_Execute_InvalidCreatorStillCompletes(t *testing.T) {
	// Corrupt data is reported in the result, not thrown as a job error.
	creator := models.CreatorProfile{Username: "broken", Followers: -5}
	brand := models.BrandProfile{Category: "fitness"}

	handler := newTestHandler()
	output, err := handler.Execute(context.Background(), &Input{Creator: &creator, Brand: brand})

	require.NoError(t, err)
	assert.Equal(t, "Invalid Data", output.CompatibilityResult.Rating.Label)
	assert.Equal(t, scoring.ActionError, output.CompatibilityResult.Recommendation.Action)
}

func TestHandler_Execute_MissingCreator(t *testing.T) {
	handler := newTestHandler()

	_, err := handler.Execute(context.Background(), &Input{
		Brand: models.BrandProfile{Category: "fitness"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_VALIDATION_FAILED")
}

func TestHandler_Execute_EmptyBrand(t *testing.T) {
	handler := newTestHandler()
	creator := models.CreatorProfile{Username: "x", Followers: 1000}

	_, err := handler.Execute(context.Background(), &Input{Creator: &creator})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BRAND_CONTRACT_VIOLATED")
}
