// internal/common/scraper/client.go
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"creator-match-workers/internal/common/errors"
	chttp "creator-match-workers/internal/common/http"
	"creator-match-workers/internal/models"
)

// Client talks to the creator-profile scraping service. The service issues
// short-lived bearer tokens from a client-credentials token endpoint.
type Client struct {
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *chttp.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	Profiles []models.CreatorProfile `json:"profiles"`
	Missing  []string                `json:"missing,omitempty"`
}

func NewClient(baseURL, tokenURL, clientID, clientSecret string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   chttp.NewClient(timeout),
	}
}

// getAccessToken returns a valid bearer token, refreshing it when expired.
// Fetch jobs run concurrently, so the cached token is guarded; holding the
// lock across the refresh keeps parallel callers from racing the endpoint.
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tokenExpiry.After(time.Now()) && c.accessToken != "" {
		return c.accessToken, nil
	}

	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", c.clientID)
	data.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("scraper token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

// FetchProfiles requests profiles for the given usernames. A partial result
// is not an error: usernames the service could not resolve come back in the
// second return value.
func (c *Client) FetchProfiles(ctx context.Context, usernames []string) ([]models.CreatorProfile, []string, error) {
	if len(usernames) == 0 {
		return nil, nil, nil
	}

	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, nil, errors.NewScraperAuthFailedError(err)
	}

	payload := map[string]interface{}{
		"usernames": usernames,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	fetchURL := fmt.Sprintf("%s/v1/profiles:batchGet", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fetchURL, strings.NewReader(string(jsonData)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, nil, errors.NewScraperTimeoutError(strings.Join(usernames, ","))
		}
		return nil, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Force a token refresh on the next call.
		c.invalidateToken()
		return nil, nil, errors.NewScraperAuthFailedError(fmt.Errorf("status 401: %s", string(body)))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("profile fetch failed (status %d): %s", resp.StatusCode, string(body))
	}

	var fetchResp profileResponse
	if err := json.Unmarshal(body, &fetchResp); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return fetchResp.Profiles, fetchResp.Missing, nil
}

// FetchProfile fetches a single profile, returning PROFILE_NOT_FOUND when the
// service knows nothing about the username.
func (c *Client) FetchProfile(ctx context.Context, username string) (*models.CreatorProfile, error) {
	profiles, missing, err := c.FetchProfiles(ctx, []string{username})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 || len(missing) > 0 {
		return nil, errors.NewProfileNotFoundError(username)
	}
	return &profiles[0], nil
}
