package configs

import "time"

// Reputation configures the background rank refresher. Zero disables it;
// ranks then only change through the explicit recompute endpoint.
type Reputation struct {
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"1h"`
}
