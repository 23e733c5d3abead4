package catalog

import (
	"errors"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"doorforge/internal/harvest"
	"doorforge/internal/variants"
)

type staticResolver struct{}

func (staticResolver) Resolve(baseName, category string) variants.Set {
	return variants.Set{
		Main:    "/images/optimized/" + category + "/" + baseName + "-600w.webp",
		Gallery: []string{"/images/optimized/" + category + "/" + baseName + "-300w.webp"},
		Optimized: variants.Optimized{
			Webp: map[string]string{},
			Avif: map[string]string{},
			Jpeg: map[string]string{},
		},
	}
}

func newTestSynthesizer(t *testing.T, seed int64) *Synthesizer {
	t.Helper()
	s, err := NewSynthesizer(DefaultCategories(), staticResolver{}, SiteInfo{
		Name:            "PG Closets",
		City:            "Ottawa",
		Currency:        "CAD",
		TaxRate:         0.13,
		SaleProbability: 0.3,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func testImage(category string) harvest.Image {
	return harvest.Image{
		Filename:      "barn-door-classic-white.jpeg",
		Category:      category,
		SourceStore:   "renin.com",
		ProductHandle: "classic-white-barn-door",
	}
}

func TestSynthesizerSeededRunsAreReproducible(t *testing.T) {
	first := newTestSynthesizer(t, 42)
	second := newTestSynthesizer(t, 42)

	manifest := harvest.Manifest{Harvested: []harvest.Image{
		testImage("barn-doors"),
		testImage("hardware"),
		testImage("handles"),
	}}

	a, _, err := first.Generate(manifest)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _, err := second.Generate(manifest)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("product counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Errorf("product %d name differs: %q vs %q", i, a[i].Name, b[i].Name)
		}
		if a[i].Price != b[i].Price {
			t.Errorf("product %d price differs: %d vs %d", i, a[i].Price, b[i].Price)
		}
		if (a[i].SalePrice == nil) != (b[i].SalePrice == nil) {
			t.Errorf("product %d sale presence differs", i)
		}
	}
}

func TestSynthesizerPriceInBand(t *testing.T) {
	s := newTestSynthesizer(t, 7)
	cfg := DefaultCategories()["barn-doors"]

	for i := 0; i < 500; i++ {
		product, err := s.Product(testImage("barn-doors"))
		if err != nil {
			t.Fatalf("Product: %v", err)
		}
		if product.Price%10 != 0 {
			t.Fatalf("price %d not a multiple of 10", product.Price)
		}
		// Rounding to the nearest 10 can push the price up to 5 past the band.
		if product.Price < cfg.PriceRange[0]-5 || product.Price > cfg.PriceRange[1]+5 {
			t.Fatalf("price %d outside band %v", product.Price, cfg.PriceRange)
		}
	}
}

func TestSynthesizerSalePriceBelowPrice(t *testing.T) {
	s := newTestSynthesizer(t, 11)

	sales := 0
	for i := 0; i < 500; i++ {
		product, err := s.Product(testImage("handles"))
		if err != nil {
			t.Fatalf("Product: %v", err)
		}
		if product.SalePrice == nil {
			continue
		}
		sales++
		if *product.SalePrice >= product.Price {
			t.Fatalf("sale price %d not below price %d", *product.SalePrice, product.Price)
		}
		if *product.SalePrice%10 != 0 {
			t.Fatalf("sale price %d not a multiple of 10", *product.SalePrice)
		}
	}
	if sales == 0 {
		t.Fatal("expected some products on sale at probability 0.3")
	}
}

func TestSynthesizerFeaturesSampledWithoutReplacement(t *testing.T) {
	s := newTestSynthesizer(t, 3)

	for i := 0; i < 100; i++ {
		product, err := s.Product(testImage("accessories"))
		if err != nil {
			t.Fatalf("Product: %v", err)
		}
		if len(product.Features) < 3 || len(product.Features) > 4 {
			t.Fatalf("expected 3-4 features, got %d", len(product.Features))
		}
		seen := make(map[string]bool)
		for _, feature := range product.Features {
			if seen[feature] {
				t.Fatalf("duplicate feature %q", feature)
			}
			seen[feature] = true
		}
	}
}

func TestSynthesizerSlugShape(t *testing.T) {
	s := newTestSynthesizer(t, 19)
	slugPattern := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	for i := 0; i < 50; i++ {
		product, err := s.Product(testImage("track-systems"))
		if err != nil {
			t.Fatalf("Product: %v", err)
		}
		if !slugPattern.MatchString(product.Slug) {
			t.Fatalf("malformed slug %q for name %q", product.Slug, product.Name)
		}
	}
}

func TestSynthesizerUnknownCategory(t *testing.T) {
	s := newTestSynthesizer(t, 1)

	_, err := s.Product(testImage("pergolas"))
	var unknownErr *UnknownCategoryError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
	if unknownErr.Key != "pergolas" {
		t.Fatalf("expected key %q, got %q", "pergolas", unknownErr.Key)
	}
}

func TestGenerateStatistics(t *testing.T) {
	s := newTestSynthesizer(t, 99)

	manifest := harvest.Manifest{Harvested: []harvest.Image{
		testImage("barn-doors"),
		testImage("barn-doors"),
		testImage("barn-doors"),
	}}

	products, stats, err := s.Generate(manifest)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if stats.ProductsGenerated != 3 {
		t.Errorf("expected 3 products generated, got %d", stats.ProductsGenerated)
	}
	if stats.CategoriesProcessed != 1 {
		t.Errorf("expected 1 category processed, got %d", stats.CategoriesProcessed)
	}
	for _, product := range products {
		if product.Category != "barn-doors" {
			t.Errorf("unexpected category %q", product.Category)
		}
		if product.Source.HarvestedFrom != "renin.com" {
			t.Errorf("unexpected source store %q", product.Source.HarvestedFrom)
		}
		if !product.Availability.InStock {
			t.Error("synthesized products should be in stock")
		}
		if product.Availability.Quantity < 10 || product.Availability.Quantity > 59 {
			t.Errorf("quantity %d outside expected range", product.Availability.Quantity)
		}
		if product.Availability.LeadTime < 1 || product.Availability.LeadTime > 14 {
			t.Errorf("lead time %d outside expected range", product.Availability.LeadTime)
		}
	}
}

func TestGenerateEmptyManifest(t *testing.T) {
	s := newTestSynthesizer(t, 5)

	products, stats, err := s.Generate(harvest.Manifest{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %d", len(products))
	}
	if stats.ProductsGenerated != 0 || stats.CategoriesProcessed != 0 {
		t.Fatalf("expected zero statistics, got %+v", stats)
	}
}
