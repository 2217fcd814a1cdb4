// internal/workers/profile/validate-creator-input/handler_test.go
package validatecreatorinput

import (
	"context"
	"testing"
	"time"

	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(&Config{
		Timeout:      5 * time.Second,
		MaxFollowers: 1_000_000_000,
		MaxBioLength: 500,
	}, logger.NewNoOpLogger())
}

func validRecord(username string) map[string]interface{} {
	return map[string]interface{}{
		"username":       username,
		"nickname":       "Nick",
		"bio":            "fitness coach",
		"followers":      float64(50_000),
		"engagementRate": 5.5,
		"verified":       true,
	}
}

func TestHandler_Execute_AllValid(t *testing.T) {
	handler := newTestHandler(t)

	input := &Input{
		Creators: []map[string]interface{}{validRecord("a"), validRecord("b")},
		Brand:    models.BrandProfile{Category: "fitness"},
	}

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, output.Valid)
	require.Len(t, output.ValidCreators, 2)
	assert.Equal(t, "a", output.ValidCreators[0].Username)
	assert.Equal(t, int64(50_000), output.ValidCreators[0].Followers)
	assert.Empty(t, output.RejectedCreators)
}

func TestHandler_Execute_MixedValidity(t *testing.T) {
	bad := validRecord("bad")
	bad["followers"] = float64(-10)

	handler := newTestHandler(t)
	input := &Input{
		Creators: []map[string]interface{}{validRecord("good"), bad},
		Brand:    models.BrandProfile{Category: "fitness"},
	}

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.False(t, output.Valid)
	require.Len(t, output.ValidCreators, 1)
	require.Len(t, output.RejectedCreators, 1)
	assert.Equal(t, "bad", output.RejectedCreators[0].Username)
	assert.NotEmpty(t, output.RejectedCreators[0].Errors)
}

func TestHandler_Execute_SingleCreatorField(t *testing.T) {
	handler := newTestHandler(t)
	input := &Input{
		Creator: validRecord("solo"),
		Brand:   models.BrandProfile{Category: "beauty"},
	}

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, output.ValidCreators, 1)
	assert.Equal(t, "solo", output.ValidCreators[0].Username)
}

func TestHandler_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(record map[string]interface{})
	}{
		{
			name:   "missing username",
			mutate: func(r map[string]interface{}) { delete(r, "username") },
		},
		{
			name:   "missing followers",
			mutate: func(r map[string]interface{}) { delete(r, "followers") },
		},
		{
			name:   "engagement rate above range",
			mutate: func(r map[string]interface{}) { r["engagementRate"] = float64(150) },
		},
		{
			name:   "followers wrong type",
			mutate: func(r map[string]interface{}) { r["followers"] = "many" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord("x")
			tt.mutate(record)

			handler := newTestHandler(t)
			_, err := handler.Execute(context.Background(), &Input{
				Creators: []map[string]interface{}{record},
				Brand:    models.BrandProfile{Category: "fitness"},
			})

			// A single all-invalid batch is a business error.
			require.Error(t, err)
			assert.Contains(t, err.Error(), "INPUT_VALIDATION_FAILED")
		})
	}
}

func TestHandler_Execute_BrandContract(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.Execute(context.Background(), &Input{
		Creators: []map[string]interface{}{validRecord("a")},
		Brand:    models.BrandProfile{},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BRAND_CONTRACT_VIOLATED")
}

func TestHandler_Execute_NoRecords(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.Execute(context.Background(), &Input{
		Brand: models.BrandProfile{Category: "fitness"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_VALIDATION_FAILED")
}
