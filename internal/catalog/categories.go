package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// CategoryConfig describes one product category: display name, copy, the
// price band products are synthesized into, and the feature pool sampled for
// each product.
type CategoryConfig struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceRange  [2]int   `json:"price_range"`
	Features    []string `json:"features"`
}

// Categories maps category keys (slugs used in URLs and directory names) to
// their configuration. Treated as immutable once constructed.
type Categories map[string]CategoryConfig

// Keys returns the category keys in sorted order.
func (c Categories) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// DefaultCategories returns the built-in closet-door retail categories.
func DefaultCategories() Categories {
	return Categories{
		"barn-doors": {
			Name:        "Barn Doors",
			Description: "Premium sliding barn doors for modern homes",
			PriceRange:  [2]int{679, 1249},
			Features:    []string{"Solid wood construction", "Premium hardware included", "Multiple finish options", "Professional installation available"},
		},
		"closet-doors": {
			Name:        "Closet Doors",
			Description: "Custom closet door solutions for any space",
			PriceRange:  [2]int{449, 899},
			Features:    []string{"Custom sizing available", "Multiple panel options", "Quality hinges included", "Lifetime warranty"},
		},
		"hardware": {
			Name:        "Door Hardware",
			Description: "Professional-grade track systems and hardware",
			PriceRange:  [2]int{299, 699},
			Features:    []string{"Smooth operation", "Soft-close technology", "Industrial strength", "Easy installation"},
		},
		"track-systems": {
			Name:        "Track Systems",
			Description: "Complete sliding door track systems",
			PriceRange:  [2]int{399, 899},
			Features:    []string{"Heavy-duty construction", "Multiple finish options", "Complete hardware kit", "Installation guide included"},
		},
		"handles": {
			Name:        "Door Handles",
			Description: "Premium door handles and pulls",
			PriceRange:  [2]int{89, 249},
			Features:    []string{"Ergonomic design", "Multiple finishes", "Easy installation", "Matching hardware available"},
		},
		"accessories": {
			Name:        "Accessories",
			Description: "Complete your door system with quality accessories",
			PriceRange:  [2]int{49, 199},
			Features:    []string{"Quality materials", "Easy installation", "Perfect fit guarantee", "Lifetime support"},
		},
	}
}

// LoadCategories reads category definitions from a JSON file. An empty path
// returns the built-in defaults.
func LoadCategories(path string) (Categories, error) {
	if path == "" {
		return DefaultCategories(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}
	var categories Categories
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse categories file %q: %w", path, err)
	}
	if err := categories.validate(); err != nil {
		return nil, fmt.Errorf("categories file %q: %w", path, err)
	}
	return categories, nil
}

func (c Categories) validate() error {
	if len(c) == 0 {
		return fmt.Errorf("no categories defined")
	}
	for key, cfg := range c {
		if cfg.Name == "" {
			return fmt.Errorf("category %q: name must be set", key)
		}
		if cfg.PriceRange[0] <= 0 || cfg.PriceRange[1] < cfg.PriceRange[0] {
			return fmt.Errorf("category %q: invalid price range %v", key, cfg.PriceRange)
		}
		if len(cfg.Features) == 0 {
			return fmt.Errorf("category %q: feature list must not be empty", key)
		}
	}
	return nil
}
