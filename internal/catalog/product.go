package catalog

import (
	"fmt"
	"time"

	"doorforge/internal/variants"
)

// Product is one synthesized catalog entry. Products are created once during
// generation and never mutated.
type Product struct {
	ID             string         `json:"id"`
	Slug           string         `json:"slug"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Description    string         `json:"description"`
	Price          int            `json:"price"`
	SalePrice      *int           `json:"sale_price"`
	Currency       string         `json:"currency"`
	TaxRate        float64        `json:"tax_rate"`
	Images         variants.Set   `json:"images"`
	Features       []string       `json:"features"`
	Specifications map[string]any `json:"specifications"`
	Availability   Availability   `json:"availability"`
	SEO            SEO            `json:"seo"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Source         Source         `json:"source"`
}

// Availability captures synthesized stock information.
type Availability struct {
	InStock  bool `json:"in_stock"`
	Quantity int  `json:"quantity"`
	LeadTime int  `json:"lead_time"`
}

// SEO carries templated search metadata for a product page.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Source records which harvested image a product was synthesized from.
type Source struct {
	HarvestedFrom    string `json:"harvested_from"`
	OriginalHandle   string `json:"original_handle"`
	GenerationMethod string `json:"generation_method"`
}

// UnknownCategoryError reports a harvested image whose category key has no
// configuration. This is a hard configuration error: synthesizing without a
// category would produce malformed prices and specifications.
type UnknownCategoryError struct {
	Key string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no category configuration for key %q", e.Key)
}
