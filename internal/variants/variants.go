// Package variants resolves optimized image renditions for a product image.
//
// The optimizer writes renditions as <base>-<width>w.<format> under a
// per-category directory. Resolution is purely conventional: the main URL is
// always synthesized (whether or not the file exists), and the directory scan
// fills in whatever renditions are actually present.
package variants

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Set describes every known rendition of one product image.
type Set struct {
	Main      string    `json:"main"`
	Gallery   []string  `json:"gallery"`
	Optimized Optimized `json:"optimized"`
}

// Optimized groups rendition URLs by format, keyed by pixel width.
type Optimized struct {
	Webp map[string]string `json:"webp"`
	Avif map[string]string `json:"avif"`
	Jpeg map[string]string `json:"jpeg"`
}

// Resolver maps an image base name and category to its rendition set.
// Implementations must not fail on missing directories; an empty Set with a
// synthesized main URL is the degraded result.
type Resolver interface {
	Resolve(baseName, category string) Set
}

// galleryWidths are the webp widths surfaced in the product gallery.
var galleryWidths = map[string]bool{"300": true, "600": true}

var renditionPattern = regexp.MustCompile(`-(\d+)w\.(webp|avif|jpeg)$`)

// DirResolver resolves renditions by scanning the optimized image tree.
type DirResolver struct {
	// Root is the optimized image tree on disk.
	Root string
	// URLPrefix is the public URL corresponding to Root.
	URLPrefix string
}

// NewDirResolver returns a DirResolver serving URLs under /images/optimized.
func NewDirResolver(root string) *DirResolver {
	return &DirResolver{Root: root, URLPrefix: "/images/optimized"}
}

// Resolve scans Root/<category> for files starting with baseName. Files not
// matching the -<width>w.<format> convention are ignored. An unreadable
// directory degrades to an empty set; the main URL is synthesized either way.
func (r *DirResolver) Resolve(baseName, category string) Set {
	set := Set{
		Main: r.url(category, baseName+"-600w.webp"),
		Optimized: Optimized{
			Webp: map[string]string{},
			Avif: map[string]string{},
			Jpeg: map[string]string{},
		},
	}

	entries, err := os.ReadDir(filepath.Join(r.Root, category))
	if err != nil {
		return set
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, baseName) {
			continue
		}
		match := renditionPattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		width, format := match[1], match[2]
		url := r.url(category, name)

		switch format {
		case "webp":
			set.Optimized.Webp[width] = url
			if galleryWidths[width] {
				set.Gallery = append(set.Gallery, url)
			}
		case "avif":
			set.Optimized.Avif[width] = url
		case "jpeg":
			set.Optimized.Jpeg[width] = url
		}
	}
	return set
}

func (r *DirResolver) url(category, file string) string {
	return r.URLPrefix + "/" + category + "/" + file
}
