package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if c.Catalog.SiteName == "" {
		return errors.New("catalog.site_name must be set")
	}
	if len(c.Catalog.Currency) != 3 {
		return fmt.Errorf("catalog.currency must be a 3-letter code, got %q", c.Catalog.Currency)
	}
	if c.Catalog.TaxRate < 0 || c.Catalog.TaxRate >= 1 {
		return errors.New("catalog.tax_rate must be in [0, 1)")
	}
	if c.Catalog.SaleProbability < 0 || c.Catalog.SaleProbability > 1 {
		return errors.New("catalog.sale_probability must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.DefaultLimit < 1 {
		return errors.New("server.default_limit must be positive")
	}
	if c.Server.MaxLimit < c.Server.DefaultLimit {
		return errors.New("server.max_limit must be at least server.default_limit")
	}
	if c.Server.RelatedLimit < 1 {
		return errors.New("server.related_limit must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
