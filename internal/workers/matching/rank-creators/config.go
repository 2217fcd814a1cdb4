// internal/workers/matching/rank-creators/config.go
package rankcreators

import (
	"time"

	"creator-match-workers/internal/scoring"
)

type Config struct {
	Timeout time.Duration
	Limits  scoring.Limits
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		Limits:  scoring.DefaultLimits,
	}
}
