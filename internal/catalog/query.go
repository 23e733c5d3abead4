package catalog

import "strings"

// ProductBySlug returns the product with the given slug, or false when no
// product matches.
func (d Database) ProductBySlug(slug string) (Product, bool) {
	for _, product := range d.Products {
		if product.Slug == slug {
			return product, true
		}
	}
	return Product{}, false
}

// ProductsByCategory returns all products in the given category, preserving
// catalog order.
func (d Database) ProductsByCategory(category string) []Product {
	var matched []Product
	for _, product := range d.Products {
		if product.Category == category {
			matched = append(matched, product)
		}
	}
	return matched
}

// Filter narrows the product list by category key and a case-insensitive
// search term matched against name, description, and features. Empty
// arguments match everything.
func (d Database) Filter(category, search string) []Product {
	search = strings.ToLower(strings.TrimSpace(search))

	matched := make([]Product, 0, len(d.Products))
	for _, product := range d.Products {
		if category != "" && product.Category != category {
			continue
		}
		if search != "" && !matchesSearch(product, search) {
			continue
		}
		matched = append(matched, product)
	}
	return matched
}

func matchesSearch(product Product, term string) bool {
	if strings.Contains(strings.ToLower(product.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Description), term) {
		return true
	}
	for _, feature := range product.Features {
		if strings.Contains(strings.ToLower(feature), term) {
			return true
		}
	}
	return false
}
