package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"doorforge/internal/config"
)

// WriteHarvestManifest writes a harvest manifest listing count images in the
// given category under the config's harvested directory.
func WriteHarvestManifest(t testing.TB, cfg *config.Config, category string, count int) {
	t.Helper()

	entries := ""
	for i := 0; i < count; i++ {
		if i > 0 {
			entries += ",\n"
		}
		entries += fmt.Sprintf(`    {"filename": "%s-%d.jpeg", "category": "%s", "source_store": "renin.com", "product_handle": "%s-%d"}`,
			category, i, category, category, i)
	}
	payload := "{\n  \"harvested\": [\n" + entries + "\n  ]\n}\n"

	if err := os.MkdirAll(cfg.Paths.HarvestedDir, 0o755); err != nil {
		t.Fatalf("mkdir harvested dir: %v", err)
	}
	if err := os.WriteFile(cfg.HarvestManifestPath(), []byte(payload), 0o644); err != nil {
		t.Fatalf("write harvest manifest: %v", err)
	}
}

// WriteRenditions drops empty rendition files for a base image name so the
// variant resolver discovers them.
func WriteRenditions(t testing.TB, cfg *config.Config, category, baseName string, widths ...string) {
	t.Helper()

	dir := filepath.Join(cfg.Paths.OptimizedDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir optimized dir: %v", err)
	}
	for _, width := range widths {
		for _, format := range []string{"webp", "avif", "jpeg"} {
			name := fmt.Sprintf("%s-%sw.%s", baseName, width, format)
			if err := os.WriteFile(filepath.Join(dir, name), []byte("stub"), 0o644); err != nil {
				t.Fatalf("write rendition %s: %v", name, err)
			}
		}
	}
}
