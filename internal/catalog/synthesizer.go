package catalog

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"doorforge/internal/harvest"
	"doorforge/internal/textutil"
	"doorforge/internal/variants"
)

// SiteInfo carries the retail constants templated into product copy.
type SiteInfo struct {
	Name            string
	City            string
	Currency        string
	TaxRate         float64
	SaleProbability float64
}

// Statistics counts what a generation run produced.
type Statistics struct {
	ProductsGenerated   int `json:"products_generated"`
	CategoriesProcessed int `json:"categories_processed"`
	ArtifactsWritten    int `json:"artifacts_written"`
}

// Synthesizer turns harvested images into products. Category configuration
// is fixed at construction; randomness comes from the injected source so a
// seeded run is reproducible.
type Synthesizer struct {
	categories Categories
	resolver   variants.Resolver
	site       SiteInfo
	rng        *rand.Rand
	now        func() time.Time
}

// NewSynthesizer constructs a Synthesizer. A nil rng falls back to a
// time-seeded source, matching the unseeded behavior of the original batch.
func NewSynthesizer(categories Categories, resolver variants.Resolver, site SiteInfo, rng *rand.Rand) (*Synthesizer, error) {
	if len(categories) == 0 {
		return nil, errors.New("synthesizer requires category configuration")
	}
	if resolver == nil {
		return nil, errors.New("synthesizer requires a variant resolver")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{
		categories: categories,
		resolver:   resolver,
		site:       site,
		rng:        rng,
		now:        time.Now,
	}, nil
}

// Product synthesizes one product from a harvested image. The image's
// category key must exist in the category configuration.
func (s *Synthesizer) Product(image harvest.Image) (Product, error) {
	cfg, ok := s.categories[image.Category]
	if !ok {
		return Product{}, &UnknownCategoryError{Key: image.Category}
	}

	baseName := strings.TrimSuffix(filepath.Base(image.Filename), filepath.Ext(image.Filename))
	name := s.productName(image.Category, cfg)
	price := s.price(cfg.PriceRange)
	now := s.now().UTC()

	product := Product{
		ID:             s.productID(image.Category, now),
		Slug:           textutil.Slugify(name),
		Name:           name,
		Category:       image.Category,
		Description:    s.description(name, cfg),
		Price:          price,
		SalePrice:      s.salePrice(price),
		Currency:       s.site.Currency,
		TaxRate:        s.site.TaxRate,
		Images:         s.resolver.Resolve(baseName, image.Category),
		Features:       s.features(cfg.Features),
		Specifications: specifications(image.Category, s.rng),
		Availability: Availability{
			InStock:  true,
			Quantity: s.rng.Intn(50) + 10,
			LeadTime: s.rng.Intn(14) + 1,
		},
		SEO:       s.seo(name, cfg, image.Category),
		CreatedAt: now,
		UpdatedAt: now,
		Source: Source{
			HarvestedFrom:    image.SourceStore,
			OriginalHandle:   image.ProductHandle,
			GenerationMethod: "automated",
		},
	}
	return product, nil
}

// Generate synthesizes products for every harvested image, grouped by
// category. Categories are processed in sorted key order so seeded runs are
// deterministic. An unknown category key aborts the batch.
func (s *Synthesizer) Generate(manifest harvest.Manifest) ([]Product, Statistics, error) {
	var stats Statistics

	grouped := manifest.ByCategory()
	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	products := make([]Product, 0, len(manifest.Harvested))
	for _, key := range keys {
		for _, image := range grouped[key] {
			product, err := s.Product(image)
			if err != nil {
				return nil, Statistics{}, err
			}
			products = append(products, product)
			stats.ProductsGenerated++
		}
		stats.CategoriesProcessed++
	}
	return products, stats, nil
}

func (s *Synthesizer) productID(category string, now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("pgc-%s-%d-%s", category, now.UnixMilli(), suffix)
}

func (s *Synthesizer) productName(category string, cfg CategoryConfig) string {
	prefixes := prefixesFor(category)
	suffixes := suffixesFor(category, cfg)
	prefix := prefixes[s.rng.Intn(len(prefixes))]
	suffix := suffixes[s.rng.Intn(len(suffixes))]
	return prefix + " " + suffix
}

func (s *Synthesizer) description(name string, cfg CategoryConfig) string {
	template := descriptionTemplates[s.rng.Intn(len(descriptionTemplates))]
	return fmt.Sprintf(template, strings.ToLower(name), cfg.Description, s.site.City)
}

// price draws uniformly from the category band and rounds to the nearest 10,
// which can land up to 5 outside the configured bounds.
func (s *Synthesizer) price(priceRange [2]int) int {
	min, max := priceRange[0], priceRange[1]
	price := s.rng.Intn(max-min+1) + min
	return roundToTen(price)
}

// salePrice returns nil most of the time; otherwise a 15-40% discount off
// price, rounded to the nearest 10 and always strictly below price.
func (s *Synthesizer) salePrice(price int) *int {
	if s.rng.Float64() >= s.site.SaleProbability {
		return nil
	}
	discount := 0.15 + s.rng.Float64()*0.25
	sale := roundToTen(int(float64(price) * (1 - discount)))
	if sale >= price {
		sale = price - 10
	}
	return &sale
}

// features samples 3-4 entries from the category pool without replacement.
func (s *Synthesizer) features(pool []string) []string {
	count := s.rng.Intn(2) + 3
	if count > len(pool) {
		count = len(pool)
	}
	picked := make([]string, 0, count)
	for _, i := range s.rng.Perm(len(pool))[:count] {
		picked = append(picked, pool[i])
	}
	return picked
}

func (s *Synthesizer) seo(name string, cfg CategoryConfig, category string) SEO {
	keywords := append([]string{}, baseKeywords(s.site.Name, s.site.City)...)
	keywords = append(keywords, categoryKeywords[category]...)
	keywords = append(keywords, strings.ToLower(name))

	return SEO{
		Title:       fmt.Sprintf("%s - Premium %s | %s %s", name, cfg.Name, s.site.Name, s.site.City),
		Description: fmt.Sprintf("%s available in %s. %s Professional installation available.", name, s.site.City, cfg.Description),
		Keywords:    strings.Join(keywords, ", "),
	}
}

func roundToTen(value int) int {
	return int(math.Round(float64(value)/10)) * 10
}
