package config

import (
	"fmt"
)

// Validate checks the settings that have no usable fallback
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Transfer.Demarcation {
	case "", "programmatic", "declarative", "none":
	default:
		return fmt.Errorf("invalid transfer demarcation: %s", c.Transfer.Demarcation)
	}

	seen := make(map[string]bool, len(c.Transfer.SeedAccounts))
	for _, seed := range c.Transfer.SeedAccounts {
		if seed.ID == "" {
			return fmt.Errorf("seed account without id")
		}
		if seen[seed.ID] {
			return fmt.Errorf("duplicate seed account: %s", seed.ID)
		}
		seen[seed.ID] = true
	}
	return nil
}
