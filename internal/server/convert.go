package server

import (
	"strings"

	"doorforge/internal/catalog"
	"doorforge/internal/relation"
)

// ToRelation projects a catalog product into the merchandising view the
// grouping engine relates over. The category's display name becomes the
// product type, SEO keywords stand in for tags, and the synthesized price and
// stock level form a single variant.
func ToRelation(product catalog.Product, categories catalog.Categories) relation.Product {
	productType := product.Category
	if cfg, ok := categories[product.Category]; ok {
		productType = cfg.Name
	}

	price := float64(product.Price)
	if product.SalePrice != nil {
		price = float64(*product.SalePrice)
	}

	var images []string
	if product.Images.Main != "" {
		images = append(images, product.Images.Main)
	}
	images = append(images, product.Images.Gallery...)

	return relation.Product{
		ID:    product.ID,
		Title: product.Name,
		Type:  productType,
		Tags:  splitKeywords(product.SEO.Keywords),
		Variants: []relation.Variant{{
			Price:             price,
			InventoryQuantity: product.Availability.Quantity,
		}},
		Images: images,
	}
}

func ToRelationPool(products []catalog.Product, categories catalog.Categories) []relation.Product {
	pool := make([]relation.Product, 0, len(products))
	for _, product := range products {
		pool = append(pool, ToRelation(product, categories))
	}
	return pool
}

func splitKeywords(keywords string) []string {
	if keywords == "" {
		return nil
	}
	parts := strings.Split(keywords, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
