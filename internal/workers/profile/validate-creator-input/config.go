// internal/workers/profile/validate-creator-input/config.go
package validatecreatorinput

import "time"

type Config struct {
	Timeout      time.Duration
	MaxFollowers int64
	MaxBioLength int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		MaxFollowers: 1_000_000_000,
		MaxBioLength: 500,
	}
}
