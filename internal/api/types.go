package api

import (
	"time"

	"doorforge/internal/catalog"
	"doorforge/internal/relation"
)

// Pagination describes the window a product list response covers.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// ListMetadata carries catalog-level information alongside a product list.
type ListMetadata struct {
	GeneratedAt   time.Time `json:"generated_at"`
	TotalProducts int       `json:"total_products"`
}

// ProductListResponse is the payload for GET /api/products.
type ProductListResponse struct {
	Products   []catalog.Product `json:"products"`
	Pagination Pagination        `json:"pagination"`
	Metadata   ListMetadata      `json:"metadata"`
}

// ProductDetailResponse is the payload for GET /api/products/{slug}. Related
// products use the simple same-category rule the storefront routes apply.
type ProductDetailResponse struct {
	Product         catalog.Product   `json:"product"`
	RelatedProducts []catalog.Product `json:"related_products"`
}

// RelatedResponse is the payload for GET /api/products/{slug}/related,
// backed by the grouping engine.
type RelatedResponse struct {
	Slug   string           `json:"slug"`
	Groups []relation.Group `json:"groups"`
}

// StatusResponse reports which catalog the server is holding.
type StatusResponse struct {
	CatalogPath   string    `json:"catalog_path"`
	GeneratedAt   time.Time `json:"generated_at"`
	Version       string    `json:"version"`
	TotalProducts int       `json:"total_products"`
	Categories    []string  `json:"categories"`
}
