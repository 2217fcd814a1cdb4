// internal/workers/profile/fetch-creator-profiles/models.go
package fetchcreatorprofiles

import "creator-match-workers/internal/models"

type Input struct {
	Usernames []string `json:"usernames"`
	Username  string   `json:"username,omitempty"`
}

type Output struct {
	Creators        []models.CreatorProfile `json:"creators"`
	FailedUsernames []string                `json:"failedUsernames"`
	CacheHits       int                     `json:"cacheHits"`
}
