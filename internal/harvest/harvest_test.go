package harvest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harvest-data.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `{
		"harvested": [
			{"filename": "rustic-barn-1.jpg", "category": "barn-doors", "source_store": "renin.com", "product_handle": "rustic-1"},
			{"filename": "track-kit.jpg", "category": "track-systems", "source_store": "renin.com", "product_handle": "track-kit"}
		]
	}`)

	manifest, found, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected manifest to be found")
	}
	if len(manifest.Harvested) != 2 {
		t.Fatalf("expected 2 images, got %d", len(manifest.Harvested))
	}
	if manifest.Harvested[0].ProductHandle != "rustic-1" {
		t.Fatalf("unexpected handle: %q", manifest.Harvested[0].ProductHandle)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	manifest, found, err := LoadManifest(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing manifest must not error: %v", err)
	}
	if found {
		t.Fatal("expected found=false")
	}
	if len(manifest.Harvested) != 0 {
		t.Fatal("expected empty manifest")
	}
}

func TestLoadManifestCorrupt(t *testing.T) {
	path := writeManifest(t, `{"harvested": [`)
	if _, _, err := LoadManifest(path); err == nil {
		t.Fatal("expected parse error for corrupt manifest")
	}
}

func TestLoadOptimizationManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "optimization-manifest.json")
	if err := os.WriteFile(path, []byte(`{"statistics": {"total_output_variants": 42}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	manifest, found, err := LoadOptimizationManifest(path)
	if err != nil || !found {
		t.Fatalf("unexpected result: found=%v err=%v", found, err)
	}
	if manifest.Statistics.TotalOutputVariants != 42 {
		t.Fatalf("unexpected variant count: %d", manifest.Statistics.TotalOutputVariants)
	}

	if _, found, err := LoadOptimizationManifest(filepath.Join(dir, "absent.json")); err != nil || found {
		t.Fatalf("missing optimization manifest must be tolerated: found=%v err=%v", found, err)
	}
}

func TestByCategory(t *testing.T) {
	manifest := Manifest{Harvested: []Image{
		{Filename: "a.jpg", Category: "barn-doors"},
		{Filename: "b.jpg", Category: "hardware"},
		{Filename: "c.jpg", Category: "barn-doors"},
	}}

	grouped := manifest.ByCategory()
	if len(grouped) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(grouped))
	}
	barn := grouped["barn-doors"]
	if len(barn) != 2 || barn[0].Filename != "a.jpg" || barn[1].Filename != "c.jpg" {
		t.Fatalf("grouping lost order: %+v", barn)
	}
}
