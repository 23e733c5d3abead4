// Package relation builds ordered groups of related products around an
// anchor product. Groups are evaluated in a fixed priority order; a product
// may appear in more than one group, and the popularity fallback only fires
// when fewer than two other groups matched.
package relation

import "math"

// Variant is one purchasable variation of a product.
type Variant struct {
	Price             float64 `json:"price"`
	InventoryQuantity int     `json:"inventory_quantity"`
}

// Product is the merchandising view the engine relates over. It is
// deliberately narrower than the catalog record: only the fields the grouping
// rules inspect.
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Tags     []string  `json:"tags"`
	Variants []Variant `json:"variants"`
	Images   []string  `json:"images"`
}

// price returns the first variant's price, or 0 when the product has no
// variants.
func (p Product) price() float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return p.Variants[0].Price
}

func (p Product) sharesTagWith(other Product) bool {
	for _, tag := range p.Tags {
		for _, otherTag := range other.Tags {
			if tag == otherTag {
				return true
			}
		}
	}
	return false
}

// popularityScore ranks fallback candidates: total inventory across variants
// plus image count.
func (p Product) popularityScore() int {
	score := len(p.Images)
	for _, variant := range p.Variants {
		score += variant.InventoryQuantity
	}
	return score
}

// Group is one titled set of related products.
type Group struct {
	Title    string    `json:"title"`
	Products []Product `json:"products"`
	Reason   string    `json:"reason"`
}

// DefaultLimit caps each group's size when no limit is configured.
const DefaultLimit = 8

// priceTolerance is the relative band for the similar-price group.
const priceTolerance = 0.3

// DefaultComplementary maps a product type to the types that complete a
// project built around it.
func DefaultComplementary() map[string][]string {
	return map[string][]string{
		"Barn Doors":    {"Hardware", "Track Systems", "Handles"},
		"Bypass Doors":  {"Hardware", "Track Systems", "Handles"},
		"Bifold Doors":  {"Hardware", "Hinges", "Handles"},
		"Pivot Doors":   {"Hardware", "Hinges", "Handles"},
		"Hardware":      {"Barn Doors", "Bypass Doors", "Bifold Doors"},
		"Track Systems": {"Barn Doors", "Bypass Doors"},
		"Handles":       {"Barn Doors", "Bypass Doors", "Bifold Doors", "Pivot Doors"},
	}
}

// Engine groups related products. Zero-value fields fall back to DefaultLimit
// and DefaultComplementary.
type Engine struct {
	limit         int
	complementary map[string][]string
}

// NewEngine constructs an Engine with the given per-group limit. A limit of
// zero or less uses DefaultLimit.
func NewEngine(limit int) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{limit: limit, complementary: DefaultComplementary()}
}

// Groups evaluates the grouping rules for anchor against pool and returns the
// non-empty groups in priority order. The anchor never appears in any group.
func (e *Engine) Groups(anchor Product, pool []Product) []Group {
	candidates := make([]Product, 0, len(pool))
	for _, product := range pool {
		if product.ID != anchor.ID {
			candidates = append(candidates, product)
		}
	}

	var groups []Group

	if anchor.Type != "" {
		if sameType := e.sameType(anchor, candidates); len(sameType) > 0 {
			groups = append(groups, Group{
				Title:    "More " + anchor.Type,
				Products: sameType,
				Reason:   "Same category",
			})
		}
	}

	if len(anchor.Tags) > 0 {
		if sharedTags := e.sharedTags(anchor, candidates); len(sharedTags) > 0 {
			groups = append(groups, Group{
				Title:    "Similar Style",
				Products: sharedTags,
				Reason:   "Shared characteristics",
			})
		}
	}

	if anchor.price() > 0 {
		if similarPrice := e.similarPrice(anchor, candidates); len(similarPrice) > 0 {
			groups = append(groups, Group{
				Title:    "Similar Price Range",
				Products: similarPrice,
				Reason:   "Comparable pricing",
			})
		}
	}

	if complementary := e.complementaryProducts(anchor, candidates); len(complementary) > 0 {
		groups = append(groups, Group{
			Title:    "Complete Your Project",
			Products: complementary,
			Reason:   "Works well together",
		})
	}

	if len(groups) < 2 {
		if popular := e.popular(candidates, groups); len(popular) > 0 {
			groups = append(groups, Group{
				Title:    "Popular Choices",
				Products: popular,
				Reason:   "Customer favorites",
			})
		}
	}

	return groups
}

func (e *Engine) sameType(anchor Product, candidates []Product) []Product {
	var matched []Product
	for _, product := range candidates {
		if product.Type == anchor.Type {
			matched = append(matched, product)
			if len(matched) == e.limit {
				break
			}
		}
	}
	return matched
}

func (e *Engine) sharedTags(anchor Product, candidates []Product) []Product {
	var matched []Product
	for _, product := range candidates {
		if product.Type != anchor.Type && product.sharesTagWith(anchor) {
			matched = append(matched, product)
			if len(matched) == e.limit {
				break
			}
		}
	}
	return matched
}

// similarPrice matches products within the price tolerance that did not
// already qualify for the same-type or shared-tag groups.
func (e *Engine) similarPrice(anchor Product, candidates []Product) []Product {
	anchorPrice := anchor.price()
	band := anchorPrice * priceTolerance

	var matched []Product
	for _, product := range candidates {
		price := product.price()
		if price <= 0 {
			continue
		}
		if math.Abs(price-anchorPrice) > band {
			continue
		}
		if product.Type == anchor.Type || product.sharesTagWith(anchor) {
			continue
		}
		matched = append(matched, product)
		if len(matched) == e.limit {
			break
		}
	}
	return matched
}

func (e *Engine) complementaryProducts(anchor Product, candidates []Product) []Product {
	types := e.complementary[anchor.Type]
	if len(types) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var matched []Product
	for _, product := range candidates {
		if wanted[product.Type] {
			matched = append(matched, product)
			if len(matched) == e.limit {
				break
			}
		}
	}
	return matched
}

// popular ranks the remaining sellable candidates by popularity score. Ties
// keep pool order.
func (e *Engine) popular(candidates []Product, existing []Group) []Product {
	placed := make(map[string]bool)
	for _, group := range existing {
		for _, product := range group.Products {
			placed[product.ID] = true
		}
	}

	var matched []Product
	for _, product := range candidates {
		if placed[product.ID] {
			continue
		}
		if len(product.Images) == 0 {
			continue
		}
		if !product.sellable() {
			continue
		}
		matched = append(matched, product)
	}

	sortByPopularity(matched)

	if len(matched) > e.limit {
		matched = matched[:e.limit]
	}
	return matched
}

func (p Product) sellable() bool {
	for _, variant := range p.Variants {
		if variant.Price > 0 {
			return true
		}
	}
	return false
}
