package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"doorforge/internal/config"
	"doorforge/internal/emit"
	"doorforge/internal/harvest"
	"doorforge/internal/logging"
	"doorforge/internal/variants"
)

// RunOptions tunes a single generation run.
type RunOptions struct {
	// Seed, when non-nil, makes the run reproducible.
	Seed *int64
}

// RunResult summarizes a completed generation run.
type RunResult struct {
	Database    Database
	Stats       Statistics
	CatalogPath string
}

// Run executes a full generation: acquire the run lock, load the harvest
// manifests, synthesize products, persist the catalog, and emit the
// TypeScript artifacts. Concurrent runs against the same output directory are
// rejected via a lock file.
func Run(cfg *config.Config, logger *slog.Logger, opts RunOptions) (RunResult, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return RunResult{}, err
	}

	lock := flock.New(filepath.Join(cfg.Paths.OutputDir, "doorforge.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return RunResult{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return RunResult{}, fmt.Errorf("another generation run holds the lock in %s", cfg.Paths.OutputDir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	manifest, found, err := harvest.LoadManifest(cfg.HarvestManifestPath())
	if err != nil {
		return RunResult{}, err
	}
	if !found {
		logger.Warn("harvest manifest not found, generating empty catalog",
			logging.String("path", cfg.HarvestManifestPath()))
	}

	optimization, optFound, err := harvest.LoadOptimizationManifest(cfg.OptimizationManifestPath())
	if err != nil {
		return RunResult{}, err
	}
	if optFound {
		logger.Info("optimization manifest loaded",
			logging.Int("output_variants", optimization.Statistics.TotalOutputVariants))
	} else {
		logger.Warn("optimization manifest not found, image variants may be incomplete",
			logging.String("path", cfg.OptimizationManifestPath()))
	}

	categories, err := LoadCategories(cfg.Catalog.CategoriesFile)
	if err != nil {
		return RunResult{}, err
	}

	var rng *rand.Rand
	if opts.Seed != nil {
		rng = rand.New(rand.NewSource(*opts.Seed))
		logger.Info("using fixed random seed", logging.Int64("seed", *opts.Seed))
	}

	synthesizer, err := NewSynthesizer(categories, variants.NewDirResolver(cfg.Paths.OptimizedDir), SiteInfo{
		Name:            cfg.Catalog.SiteName,
		City:            cfg.Catalog.City,
		Currency:        cfg.Catalog.Currency,
		TaxRate:         cfg.Catalog.TaxRate,
		SaleProbability: cfg.Catalog.SaleProbability,
	}, rng)
	if err != nil {
		return RunResult{}, err
	}

	logger.Info("starting catalog generation",
		logging.Int("harvested_images", len(manifest.Harvested)))

	products, stats, err := synthesizer.Generate(manifest)
	if err != nil {
		return RunResult{}, err
	}

	generatedAt := time.Now().UTC()

	categoriesJSON, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return RunResult{}, fmt.Errorf("encode categories: %w", err)
	}
	artifacts, err := emit.WriteArtifacts(emit.Inputs{
		OutputDir:      cfg.Paths.OutputDir,
		APIDir:         cfg.Paths.APIRoutesDir,
		CategoryKeys:   categories.Keys(),
		CategoriesJSON: categoriesJSON,
		GeneratedAt:    generatedAt,
	})
	if err != nil {
		return RunResult{}, err
	}
	stats.ArtifactsWritten = artifacts

	db := NewDatabase(products, categories, stats, generatedAt)
	catalogPath := cfg.CatalogPath()
	if err := db.Save(catalogPath); err != nil {
		return RunResult{}, err
	}

	logger.Info("catalog generation complete",
		logging.Int("products", stats.ProductsGenerated),
		logging.Int("categories", stats.CategoriesProcessed),
		logging.Int("artifacts", stats.ArtifactsWritten),
		logging.String("catalog", catalogPath))

	return RunResult{Database: db, Stats: stats, CatalogPath: catalogPath}, nil
}
