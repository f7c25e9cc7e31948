package config

import (
	"fmt"
	"net/mail"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Delivery.validate(); err != nil {
		return fmt.Errorf("delivery: %w", err)
	}

	return nil
}

func (d *DeliveryConfig) validate() error {
	switch d.Mode {
	case DeliveryModeDryRun:
		return nil
	case DeliveryModeSES:
		if d.FromAddress == "" {
			return fmt.Errorf("from_address is required in %q mode", DeliveryModeSES)
		}
		if _, err := mail.ParseAddress(d.FromAddress); err != nil {
			return fmt.Errorf("from_address %q: %w", d.FromAddress, err)
		}
		return nil
	default:
		return fmt.Errorf("mode must be %q or %q (got %q)",
			DeliveryModeDryRun, DeliveryModeSES, d.Mode)
	}
}
