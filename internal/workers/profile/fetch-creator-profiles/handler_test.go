// internal/workers/profile/fetch-creator-profiles/handler_test.go
package fetchcreatorprofiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"creator-match-workers/internal/common/logger"
	"creator-match-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	profiles map[string]models.CreatorProfile
	err      error
	calls    [][]string
}

func (f *fakeFetcher) FetchProfiles(_ context.Context, usernames []string) ([]models.CreatorProfile, []string, error) {
	f.calls = append(f.calls, usernames)
	if f.err != nil {
		return nil, nil, f.err
	}
	var found []models.CreatorProfile
	var missing []string
	for _, username := range usernames {
		if profile, ok := f.profiles[username]; ok {
			found = append(found, profile)
		} else {
			missing = append(missing, username)
		}
	}
	return found, missing, nil
}

func createTestConfig() *Config {
	return &Config{
		CacheTTL:     10 * time.Minute,
		Timeout:      5 * time.Second,
		MaxBatchSize: 50,
	}
}

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	srv, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	return srv, redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testProfile(username string) models.CreatorProfile {
	return models.CreatorProfile{
		Username:       username,
		Nickname:       "Nick " + username,
		Bio:            "fitness coach",
		Followers:      50_000,
		EngagementRate: 5.5,
		Verified:       true,
	}
}

func TestHandler_Execute_CacheHit(t *testing.T) {
	srv, redisClient := setupMiniredis(t)
	cached := testProfile("cacheduser")
	data, _ := json.Marshal(cached)
	require.NoError(t, srv.Set("creator:profile:cacheduser", string(data)))

	fetcher := &fakeFetcher{}
	handler := NewHandler(createTestConfig(), fetcher, redisClient, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{Usernames: []string{"cacheduser"}})

	require.NoError(t, err)
	require.Len(t, output.Creators, 1)
	assert.Equal(t, "cacheduser", output.Creators[0].Username)
	assert.Equal(t, 1, output.CacheHits)
	assert.Empty(t, fetcher.calls, "cache hit must not reach the scraper")
}

func TestHandler_Execute_ScraperFetchPopulatesCache(t *testing.T) {
	srv, redisClient := setupMiniredis(t)

	fetcher := &fakeFetcher{profiles: map[string]models.CreatorProfile{
		"newuser": testProfile("newuser"),
	}}
	handler := NewHandler(createTestConfig(), fetcher, redisClient, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{Usernames: []string{"newuser"}})

	require.NoError(t, err)
	require.Len(t, output.Creators, 1)
	assert.Equal(t, 0, output.CacheHits)
	assert.True(t, srv.Exists("creator:profile:newuser"), "fetched profile must be cached")
}

func TestHandler_Execute_DatabaseFallback(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT username, nickname, bio").
		WithArgs("dbuser").
		WillReturnRows(sqlmock.NewRows([]string{
			"username", "nickname", "bio", "followers", "engagement_rate", "verified", "bio_link", "commerce_user",
		}).AddRow("dbuser", "DB User", "travel blogger", 120_000, 3.1, false, "", false))

	fetcher := &fakeFetcher{err: errors.New("scraper unavailable")}
	handler := NewHandler(createTestConfig(), fetcher, redisClient, db, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{Usernames: []string{"dbuser"}})

	require.NoError(t, err)
	require.Len(t, output.Creators, 1)
	assert.Equal(t, "dbuser", output.Creators[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_PartialFailure(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT username, nickname, bio").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	fetcher := &fakeFetcher{profiles: map[string]models.CreatorProfile{
		"real": testProfile("real"),
	}}
	handler := NewHandler(createTestConfig(), fetcher, redisClient, db, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{Usernames: []string{"real", "ghost"}})

	require.NoError(t, err)
	require.Len(t, output.Creators, 1)
	assert.Equal(t, []string{"ghost"}, output.FailedUsernames)
}

func TestHandler_Execute_AllFailed(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT username, nickname, bio").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	fetcher := &fakeFetcher{}
	handler := NewHandler(createTestConfig(), fetcher, redisClient, db, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{Usernames: []string{"ghost"}})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "PROFILE_FETCH_FAILED")
}

func TestHandler_Execute_CacheErrorFallsThroughToScraper(t *testing.T) {
	redisClient, redisMock := redismock.NewClientMock()
	profile := testProfile("user1")
	data, _ := json.Marshal(&profile)

	redisMock.ExpectGet("creator:profile:user1").SetErr(errors.New("connection refused"))
	redisMock.ExpectSet("creator:profile:user1", data, 10*time.Minute).SetVal("OK")

	fetcher := &fakeFetcher{profiles: map[string]models.CreatorProfile{"user1": profile}}
	handler := NewHandler(createTestConfig(), fetcher, redisClient, nil, logger.NewNoOpLogger())

	output, err := handler.Execute(context.Background(), &Input{Usernames: []string{"user1"}})

	require.NoError(t, err)
	require.Len(t, output.Creators, 1)
	assert.Equal(t, 0, output.CacheHits)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_EmptyInput(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	handler := NewHandler(createTestConfig(), &fakeFetcher{}, redisClient, nil, logger.NewNoOpLogger())

	_, err := handler.Execute(context.Background(), &Input{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_VALIDATION_FAILED")
}

func TestNormalizeUsernames(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected []string
	}{
		{
			name:     "single username field",
			input:    Input{Username: "solo"},
			expected: []string{"solo"},
		},
		{
			name:     "duplicates removed, order kept",
			input:    Input{Usernames: []string{"a", "b", "a", "c", "b"}},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "single field merged ahead of batch",
			input:    Input{Username: "a", Usernames: []string{"b", "a"}},
			expected: []string{"a", "b"},
		},
		{
			name:     "whitespace-only entries dropped",
			input:    Input{Usernames: []string{"  ", "a", ""}},
			expected: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeUsernames(&tt.input))
		})
	}
}

func TestChunkUsernames(t *testing.T) {
	chunks := chunkUsernames([]string{"a", "b", "c", "d", "e"}, 2)

	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"a", "b"}, chunks[0])
	assert.Equal(t, []string{"e"}, chunks[2])
}
