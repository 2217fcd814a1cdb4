// internal/common/scraper/client_test.go
package scraper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator-match-workers/internal/models"
)

func newTestServer(t *testing.T, tokenCalls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "test-token", ExpiresIn: 3600, TokenType: "Bearer"})
	})
	mux.HandleFunc("/v1/profiles:batchGet", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(profileResponse{
			Profiles: []models.CreatorProfile{{Username: "fit_jane", Followers: 80_000}},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchProfiles_ConcurrentCallsShareOneToken(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	client := NewClient(server.URL, server.URL+"/oauth/token", "id", "secret", 5*time.Second)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = client.FetchProfiles(context.Background(), []string{"fit_jane"})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestFetchProfiles_UnauthorizedResetsToken(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	client := NewClient(server.URL, server.URL+"/oauth/token", "id", "secret", 5*time.Second)

	// Poison the cached token so the profile endpoint rejects the call.
	client.accessToken = "stale-token"
	client.tokenExpiry = time.Now().Add(time.Hour)

	_, _, err := client.FetchProfiles(context.Background(), []string{"fit_jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCRAPER_AUTH_FAILED")

	// The stale token was invalidated, so the retry fetches a fresh one.
	profiles, missing, err := client.FetchProfiles(context.Background(), []string{"fit_jane"})
	require.NoError(t, err)
	assert.Empty(t, missing)
	require.Len(t, profiles, 1)
	assert.Equal(t, "fit_jane", profiles[0].Username)
}
