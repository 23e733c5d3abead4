package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCategoriesValid(t *testing.T) {
	categories := DefaultCategories()
	if err := categories.validate(); err != nil {
		t.Fatalf("default categories invalid: %v", err)
	}
	keys := categories.Keys()
	if len(keys) != 6 {
		t.Fatalf("expected 6 default categories, got %d", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}

func TestLoadCategoriesEmptyPathUsesDefaults(t *testing.T) {
	categories, err := LoadCategories("")
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if _, ok := categories["barn-doors"]; !ok {
		t.Fatal("expected built-in barn-doors category")
	}
}

func TestLoadCategoriesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	payload := `{
		"pergolas": {
			"name": "Pergolas",
			"description": "Outdoor pergola kits",
			"price_range": [500, 2500],
			"features": ["Cedar construction", "Pre-cut kit"]
		}
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write categories file: %v", err)
	}

	categories, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	cfg, ok := categories["pergolas"]
	if !ok {
		t.Fatal("expected pergolas category")
	}
	if cfg.PriceRange != [2]int{500, 2500} {
		t.Fatalf("unexpected price range %v", cfg.PriceRange)
	}
}

func TestLoadCategoriesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty object", `{}`},
		{"missing name", `{"x": {"description": "d", "price_range": [1, 2], "features": ["f"]}}`},
		{"inverted price range", `{"x": {"name": "X", "description": "d", "price_range": [200, 100], "features": ["f"]}}`},
		{"no features", `{"x": {"name": "X", "description": "d", "price_range": [1, 2], "features": []}}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "categories.json")
			if err := os.WriteFile(path, []byte(tt.payload), 0o644); err != nil {
				t.Fatalf("write categories file: %v", err)
			}
			if _, err := LoadCategories(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
