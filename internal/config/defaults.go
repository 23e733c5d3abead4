package config

const (
	defaultHarvestedDir    = "./public/images/harvested"
	defaultOptimizedDir    = "./public/images/optimized"
	defaultOutputDir       = "./lib/generated"
	defaultAPIRoutesDir    = "./app/api/products"
	defaultLogDir          = "~/.local/share/doorforge/logs"
	defaultAPIBind         = "127.0.0.1:7610"
	defaultSiteName        = "PG Closets"
	defaultCity            = "Ottawa"
	defaultCurrency        = "CAD"
	defaultTaxRate         = 0.13
	defaultSaleProbability = 0.3
	defaultServerLimit     = 50
	defaultServerMaxLimit  = 200
	defaultRelatedLimit    = 8
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			HarvestedDir: defaultHarvestedDir,
			OptimizedDir: defaultOptimizedDir,
			OutputDir:    defaultOutputDir,
			APIRoutesDir: defaultAPIRoutesDir,
			LogDir:       defaultLogDir,
			APIBind:      defaultAPIBind,
		},
		Catalog: Catalog{
			SiteName:        defaultSiteName,
			City:            defaultCity,
			Currency:        defaultCurrency,
			TaxRate:         defaultTaxRate,
			SaleProbability: defaultSaleProbability,
		},
		Server: Server{
			DefaultLimit: defaultServerLimit,
			MaxLimit:     defaultServerMaxLimit,
			RelatedLimit: defaultRelatedLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
