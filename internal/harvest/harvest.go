// Package harvest reads the manifests produced by the upstream image
// collector and optimizer.
//
// Both manifests are optional inputs: a missing file yields an empty value so
// catalog generation can proceed as a best-effort batch. A file that exists
// but cannot be parsed is an error, since silently ignoring a corrupt
// manifest would regenerate an empty catalog over a good one.
package harvest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Image is one harvested product image record.
type Image struct {
	Filename      string `json:"filename"`
	Category      string `json:"category"`
	SourceStore   string `json:"source_store"`
	ProductHandle string `json:"product_handle"`
}

// Manifest is the harvest-data.json payload.
type Manifest struct {
	Harvested []Image `json:"harvested"`
}

// OptimizationStatistics is the slice of optimization-manifest.json the
// generator cares about; only the variant count is read, for logging.
type OptimizationStatistics struct {
	TotalOutputVariants int `json:"total_output_variants"`
}

// OptimizationManifest is the optimization-manifest.json payload.
type OptimizationManifest struct {
	Statistics OptimizationStatistics `json:"statistics"`
}

// LoadManifest reads the harvest manifest at path. A missing file returns an
// empty manifest and found=false; malformed JSON returns an error.
func LoadManifest(path string) (Manifest, bool, error) {
	var manifest Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, false, nil
		}
		return Manifest{}, false, fmt.Errorf("read harvest manifest: %w", err)
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, true, fmt.Errorf("parse harvest manifest %q: %w", path, err)
	}
	return manifest, true, nil
}

// LoadOptimizationManifest reads the optimization manifest at path with the
// same missing-file tolerance as LoadManifest.
func LoadOptimizationManifest(path string) (OptimizationManifest, bool, error) {
	var manifest OptimizationManifest
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return OptimizationManifest{}, false, nil
		}
		return OptimizationManifest{}, false, fmt.Errorf("read optimization manifest: %w", err)
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return OptimizationManifest{}, true, fmt.Errorf("parse optimization manifest %q: %w", path, err)
	}
	return manifest, true, nil
}

// ByCategory groups harvested images by category key, preserving manifest
// order within each group.
func (m Manifest) ByCategory() map[string][]Image {
	grouped := make(map[string][]Image)
	for _, image := range m.Harvested {
		grouped[image.Category] = append(grouped[image.Category], image)
	}
	return grouped
}
