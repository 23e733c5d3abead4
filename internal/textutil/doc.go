// Package textutil provides text processing utilities for product naming.
//
// The primary use case is turning generated product names into URL-safe
// slugs: lowercase ASCII words joined by single hyphens, with accented
// characters folded to their base letters and everything else dropped.
// Slugify is idempotent, so stored slugs can be re-slugified safely.
package textutil
