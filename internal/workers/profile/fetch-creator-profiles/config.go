// internal/workers/profile/fetch-creator-profiles/config.go
package fetchcreatorprofiles

import "time"

type Config struct {
	CacheTTL     time.Duration
	Timeout      time.Duration
	MaxBatchSize int
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL:     10 * time.Minute,
		Timeout:      30 * time.Second,
		MaxBatchSize: 50,
	}
}
