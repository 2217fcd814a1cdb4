// internal/workers/reporting/build-ranking-report/config.go
package buildrankingreport

import "time"

type Config struct {
	Timeout      time.Duration
	RegistryPath string
	TopListSize  int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		RegistryPath: "configs/activity-registry.json",
		TopListSize:  10,
	}
}
