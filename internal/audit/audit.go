// Package audit cross-checks a generated catalog against the optimized image
// tree: every referenced rendition must exist on disk, and JPEG renditions
// must actually be the width their filename declares.
package audit

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"doorforge/internal/catalog"
	"doorforge/internal/logging"
)

var renditionPattern = regexp.MustCompile(`-(\d+)w\.(webp|avif|jpeg)$`)

// Reference is one catalog image URL resolved to a file on disk.
type Reference struct {
	ProductSlug   string `json:"product_slug"`
	URL           string `json:"url"`
	Path          string `json:"path"`
	DeclaredWidth int    `json:"declared_width"`
	ActualWidth   int    `json:"actual_width,omitempty"`
}

// Report summarizes one audit run.
type Report struct {
	Products        int            `json:"products"`
	References      int            `json:"references"`
	Missing         []Reference    `json:"missing"`
	WidthMismatches []Reference    `json:"width_mismatches"`
	ByCategory      map[string]int `json:"by_category"`
}

// Clean reports whether the audit found no problems.
func (r Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.WidthMismatches) == 0
}

// Auditor resolves catalog image URLs against an optimized image root.
type Auditor struct {
	root      string
	urlPrefix string
	logger    *slog.Logger
}

// New constructs an Auditor over the given optimized image root.
func New(root string, logger *slog.Logger) *Auditor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Auditor{
		root:      root,
		urlPrefix: "/images/optimized",
		logger:    logger.With(logging.String("component", "audit")),
	}
}

// Run audits every image reference in the catalog.
func (a *Auditor) Run(db catalog.Database) (Report, error) {
	report := Report{
		Products:   len(db.Products),
		ByCategory: make(map[string]int),
	}

	for _, product := range db.Products {
		for _, url := range productURLs(product) {
			report.References++
			report.ByCategory[product.Category]++
			if err := a.check(product.Slug, url, &report); err != nil {
				return Report{}, err
			}
		}
	}

	a.logger.Info("audit complete",
		logging.Int("products", report.Products),
		logging.Int("references", report.References),
		logging.Int("missing", len(report.Missing)),
		logging.Int("width_mismatches", len(report.WidthMismatches)))
	return report, nil
}

func (a *Auditor) check(slug, url string, report *Report) error {
	relative := strings.TrimPrefix(url, a.urlPrefix)
	if relative == url {
		// Reference outside the optimized tree; nothing to verify.
		return nil
	}
	path := filepath.Join(a.root, filepath.FromSlash(relative))

	ref := Reference{ProductSlug: slug, URL: url, Path: path}
	if match := renditionPattern.FindStringSubmatch(url); match != nil {
		ref.DeclaredWidth, _ = strconv.Atoi(match[1])
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.Missing = append(report.Missing, ref)
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	// Width verification only covers JPEG renditions; the stdlib image
	// decoders behind imaging do not handle webp or avif.
	if ref.DeclaredWidth == 0 || !strings.HasSuffix(path, ".jpeg") {
		return nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		a.logger.Warn("failed to decode rendition",
			logging.String("path", path), logging.Error(err))
		return nil
	}
	ref.ActualWidth = img.Bounds().Dx()
	if ref.ActualWidth != ref.DeclaredWidth {
		report.WidthMismatches = append(report.WidthMismatches, ref)
	}
	return nil
}

func productURLs(product catalog.Product) []string {
	var urls []string
	if product.Images.Main != "" {
		urls = append(urls, product.Images.Main)
	}
	urls = append(urls, product.Images.Gallery...)
	for _, variants := range []map[string]string{
		product.Images.Optimized.Webp,
		product.Images.Optimized.Avif,
		product.Images.Optimized.Jpeg,
	} {
		for _, url := range variants {
			urls = append(urls, url)
		}
	}
	return dedupe(urls)
}

func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	unique := urls[:0]
	for _, url := range urls {
		if seen[url] {
			continue
		}
		seen[url] = true
		unique = append(unique, url)
	}
	return unique
}
