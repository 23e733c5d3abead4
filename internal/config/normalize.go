package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCatalog()
	c.normalizeServer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.HarvestedDir, err = expandPath(c.Paths.HarvestedDir); err != nil {
		return fmt.Errorf("paths.harvested_dir: %w", err)
	}
	if c.Paths.OptimizedDir, err = expandPath(c.Paths.OptimizedDir); err != nil {
		return fmt.Errorf("paths.optimized_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.APIRoutesDir, err = expandPath(c.Paths.APIRoutesDir); err != nil {
		return fmt.Errorf("paths.api_routes_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Catalog.CategoriesFile != "" {
		if c.Catalog.CategoriesFile, err = expandPath(c.Catalog.CategoriesFile); err != nil {
			return fmt.Errorf("catalog.categories_file: %w", err)
		}
	}

	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if token := strings.TrimSpace(os.Getenv("DOORFORGE_API_TOKEN")); token != "" && c.Paths.APIToken == "" {
		c.Paths.APIToken = token
	}
	return nil
}

func (c *Config) normalizeCatalog() {
	c.Catalog.SiteName = strings.TrimSpace(c.Catalog.SiteName)
	c.Catalog.City = strings.TrimSpace(c.Catalog.City)
	c.Catalog.Currency = strings.ToUpper(strings.TrimSpace(c.Catalog.Currency))
	if c.Catalog.Currency == "" {
		c.Catalog.Currency = defaultCurrency
	}
}

func (c *Config) normalizeServer() {
	if c.Server.DefaultLimit == 0 {
		c.Server.DefaultLimit = defaultServerLimit
	}
	if c.Server.MaxLimit == 0 {
		c.Server.MaxLimit = defaultServerMaxLimit
	}
	if c.Server.RelatedLimit == 0 {
		c.Server.RelatedLimit = defaultRelatedLimit
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
