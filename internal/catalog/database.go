package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"doorforge/internal/fileutil"
)

// Metadata describes a generated catalog as a whole.
type Metadata struct {
	GeneratedAt   time.Time `json:"generated_at"`
	TotalProducts int       `json:"total_products"`
	Categories    []string  `json:"categories"`
	Version       string    `json:"version"`
	Source        string    `json:"source"`
}

// Database is the complete persisted catalog: every product, the category
// configuration it was generated from, and run statistics.
type Database struct {
	Metadata   Metadata   `json:"metadata"`
	Products   []Product  `json:"products"`
	Categories Categories `json:"categories"`
	Statistics Statistics `json:"statistics"`
}

// DatabaseVersion marks the catalog schema. Consumers should reject files
// with a different major version.
const DatabaseVersion = "2.0"

// NewDatabase assembles a Database from a generation run.
func NewDatabase(products []Product, categories Categories, stats Statistics, generatedAt time.Time) Database {
	return Database{
		Metadata: Metadata{
			GeneratedAt:   generatedAt.UTC(),
			TotalProducts: len(products),
			Categories:    categories.Keys(),
			Version:       DatabaseVersion,
			Source:        "harvested-images",
		},
		Products:   products,
		Categories: categories,
		Statistics: stats,
	}
}

// Save writes the database as indented JSON. The write is atomic: readers
// never observe a partially written catalog.
func (d Database) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// LoadDatabase reads a previously generated catalog.
func LoadDatabase(path string) (Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Database{}, fmt.Errorf("read catalog: %w", err)
	}
	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return Database{}, fmt.Errorf("parse catalog %q: %w", path, err)
	}
	return db, nil
}
