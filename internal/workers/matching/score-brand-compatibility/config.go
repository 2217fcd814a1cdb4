// internal/workers/matching/score-brand-compatibility/config.go
package scorebrandcompatibility

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
		Timeout: 10 * time.Second,
		Limits:  scoring.DefaultLimits,
	}
}
