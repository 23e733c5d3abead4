package testsupport

import (
	"path/filepath"
	"testing"

	"doorforge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.HarvestedDir = filepath.Join(base, "harvested")
	cfgVal.Paths.OptimizedDir = filepath.Join(base, "optimized")
	cfgVal.Paths.OutputDir = filepath.Join(base, "generated")
	cfgVal.Paths.APIRoutesDir = filepath.Join(base, "api", "products")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.APIBind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAPIToken sets the bearer token on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.APIToken = token
	}
}

// WithSaleProbability overrides the sale probability on the test config.
func WithSaleProbability(probability float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.SaleProbability = probability
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.HarvestedDir)
}
